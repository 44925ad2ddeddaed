package model

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

type BandIssueKind string

const (
	BandGap     BandIssueKind = "GAP"
	BandOverlap BandIssueKind = "OVERLAP"
)

// BandIssue mô tả một khoảng chi tiêu bị hở hoặc bị chồng giữa hai ranking liền kề
type BandIssue struct {
	Kind  BandIssueKind   `json:"kind"`
	Lower string          `json:"lower"`
	Upper string          `json:"upper"`
	From  decimal.Decimal `json:"from"`
	To    decimal.Decimal `json:"to"`
}

func (i BandIssue) String() string {
	return fmt.Sprintf("%s between %s and %s: [%s, %s)", i.Kind, i.Lower, i.Upper, i.From, i.To)
}

// SortByMinSpending sắp xếp tăng dần theo MinSpending (copy, không sửa slice gốc)
func SortByMinSpending(rankings []Ranking) []Ranking {
	sorted := make([]Ranking, len(rankings))
	copy(sorted, rankings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinSpending.LessThan(sorted[j].MinSpending)
	})
	return sorted
}

// ValidateBands kiểm tra các band có liền nhau và không chồng lấn.
// Band đầu tiên phải bắt đầu từ 0.
func ValidateBands(rankings []Ranking) []BandIssue {
	sorted := SortByMinSpending(rankings)
	var issues []BandIssue

	if len(sorted) > 0 && sorted[0].MinSpending.IsPositive() {
		issues = append(issues, BandIssue{
			Kind: BandGap, Lower: "", Upper: sorted[0].Name,
			From: decimal.Zero, To: sorted[0].MinSpending,
		})
	}

	for i := 0; i+1 < len(sorted); i++ {
		lower, upper := sorted[i], sorted[i+1]

		if lower.MaxSpending == nil {
			issues = append(issues, BandIssue{
				Kind: BandOverlap, Lower: lower.Name, Upper: upper.Name,
				From: upper.MinSpending, To: upper.MinSpending,
			})
			continue
		}

		switch lower.MaxSpending.Cmp(upper.MinSpending) {
		case -1:
			issues = append(issues, BandIssue{
				Kind: BandGap, Lower: lower.Name, Upper: upper.Name,
				From: *lower.MaxSpending, To: upper.MinSpending,
			})
		case 1:
			issues = append(issues, BandIssue{
				Kind: BandOverlap, Lower: lower.Name, Upper: upper.Name,
				From: upper.MinSpending, To: *lower.MaxSpending,
			})
		}
	}

	return issues
}

// FindBySpending trả về ranking chứa amount. Khi band chồng nhau, band có MinSpending cao hơn thắng.
func FindBySpending(rankings []Ranking, amount decimal.Decimal) (*Ranking, bool) {
	sorted := SortByMinSpending(rankings)
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Contains(amount) {
			r := sorted[i]
			return &r, true
		}
	}
	return nil, false
}
