package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ranking là hạng thành viên theo tổng chi tiêu.
// Band chi tiêu là [MinSpending, MaxSpending); MaxSpending = nil nghĩa là không giới hạn trên.
type Ranking struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	MinSpending  decimal.Decimal  `json:"min_spending"`
	MaxSpending  *decimal.Decimal `json:"max_spending"`
	DiscountRate decimal.Decimal  `json:"discount_rate"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Contains kiểm tra amount có thuộc band của ranking không
func (r Ranking) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(r.MinSpending) {
		return false
	}
	return r.MaxSpending == nil || amount.LessThan(*r.MaxSpending)
}

// DefaultRankingName là hạng mặc định của customer mới
const DefaultRankingName = "S-NEW"

func million(n int64) decimal.Decimal {
	return decimal.NewFromInt(n * 1_000_000)
}

func bound(n int64) *decimal.Decimal {
	d := million(n)
	return &d
}

// DefaultRankings trả về bộ hạng khởi tạo. Các band liền nhau, không chồng lấn.
func DefaultRankings() []Ranking {
	return []Ranking{
		{Name: "S-NEW", Description: "Thành viên mới", MinSpending: decimal.Zero, MaxSpending: bound(3), DiscountRate: decimal.Zero},
		{Name: "S-SILVER", Description: "Thành viên bạc", MinSpending: million(3), MaxSpending: bound(10), DiscountRate: decimal.NewFromInt(2)},
		{Name: "S-GOLD", Description: "Thành viên vàng", MinSpending: million(10), MaxSpending: bound(50), DiscountRate: decimal.NewFromInt(3)},
		{Name: "S-PLATINUM", Description: "Thành viên bạch kim", MinSpending: million(50), MaxSpending: bound(200), DiscountRate: decimal.NewFromInt(5)},
		{Name: "S-DIAMOND", Description: "Thành viên kim cương", MinSpending: million(200), MaxSpending: nil, DiscountRate: decimal.NewFromInt(7)},
	}
}
