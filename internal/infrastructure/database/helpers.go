package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// IsNoRows kiểm tra query không trả về row nào
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation kiểm tra lỗi vi phạm unique constraint.
// constraint rỗng = bất kỳ constraint nào.
func IsUniqueViolation(err error, constraint string) bool {
	return pgErrorMatches(err, CodeUniqueViolation, constraint)
}

// IsForeignKeyViolation kiểm tra lỗi vi phạm foreign key
func IsForeignKeyViolation(err error, constraint string) bool {
	return pgErrorMatches(err, CodeForeignKeyViolation, constraint)
}

func pgErrorMatches(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
