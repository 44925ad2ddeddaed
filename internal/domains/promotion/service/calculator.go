package service

import (
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/promotion/model"
)

var hundred = decimal.NewFromInt(100)

// DiscountCalculator tính số tiền giảm của một promotion trên giá bán
type DiscountCalculator struct{}

func NewDiscountCalculator() *DiscountCalculator {
	return &DiscountCalculator{}
}

// Calculate
//
// 1. PERCENTAGE: price × discount / 100
// 2. FIXED_AMOUNT: discount, không vượt quá price
//
// Kết quả làm tròn đến VND
func (c *DiscountCalculator) Calculate(promo *model.Promotion, price decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch promo.PromotionType {
	case model.TypePercentage:
		// VD: 400,000 × 20 / 100 = 80,000
		discount = price.Mul(promo.Discount).Div(hundred)
	case model.TypeFixedAmount:
		discount = promo.Discount
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(price) {
		discount = price
	}
	return discount.Round(0)
}
