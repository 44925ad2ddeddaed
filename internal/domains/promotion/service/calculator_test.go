package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ecommerce-backend/internal/domains/promotion/model"
)

func TestDiscountCalculator_Calculate(t *testing.T) {
	calc := NewDiscountCalculator()

	tests := []struct {
		name     string
		promo    model.Promotion
		price    int64
		expected int64
	}{
		{"percentage", model.Promotion{PromotionType: model.TypePercentage, Discount: decimal.NewFromInt(20)}, 400000, 80000},
		{"percentage rounds to VND", model.Promotion{PromotionType: model.TypePercentage, Discount: decimal.NewFromInt(15)}, 99999, 15000},
		{"full percentage", model.Promotion{PromotionType: model.TypePercentage, Discount: decimal.NewFromInt(100)}, 50000, 50000},
		{"fixed", model.Promotion{PromotionType: model.TypeFixedAmount, Discount: decimal.NewFromInt(30000)}, 200000, 30000},
		{"fixed capped at price", model.Promotion{PromotionType: model.TypeFixedAmount, Discount: decimal.NewFromInt(100000)}, 50000, 50000},
		{"zero price", model.Promotion{PromotionType: model.TypeFixedAmount, Discount: decimal.NewFromInt(100000)}, 0, 0},
		{"unknown type", model.Promotion{PromotionType: "BOGO", Discount: decimal.NewFromInt(10)}, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(&tt.promo, decimal.NewFromInt(tt.price))
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(got), "got %s", got.String())
		})
	}
}
