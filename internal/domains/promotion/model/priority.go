package model

import (
	"fmt"
	"sort"
	"strings"
)

// PriorityOrder quyết định priority nào thắng khi nhiều promotion cùng áp dụng
type PriorityOrder string

const (
	PriorityAsc  PriorityOrder = "asc"  // số nhỏ thắng
	PriorityDesc PriorityOrder = "desc" // số lớn thắng
)

func ParsePriorityOrder(s string) (PriorityOrder, error) {
	switch PriorityOrder(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityAsc, "":
		return PriorityAsc, nil
	case PriorityDesc:
		return PriorityDesc, nil
	}
	return "", fmt.Errorf("invalid priority order %q", s)
}

// SortByPriority sắp xếp tại chỗ, phần tử đầu là promotion thắng.
// Cùng priority: start_date sớm hơn trước, rồi id nhỏ hơn.
func SortByPriority(promos []Promotion, order PriorityOrder) {
	sort.SliceStable(promos, func(i, j int) bool {
		a, b := promos[i], promos[j]
		if a.Priority != b.Priority {
			if order == PriorityDesc {
				return a.Priority > b.Priority
			}
			return a.Priority < b.Priority
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.ID < b.ID
	})
}
