package utils

import "strings"

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// WhereSQL trả về "WHERE ..." hoặc chuỗi rỗng khi không có điều kiện
func WhereSQL(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return "WHERE " + JoinWithAnd(clauses)
}

// EscapeLike escape ký tự đặc biệt cho ILIKE ... ESCAPE '\'
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
