package model

import (
	"time"

	"github.com/shopspring/decimal"

	catalogModel "ecommerce-backend/internal/domains/catalog/model"
)

type PromotionType string

const (
	TypePercentage  PromotionType = "PERCENTAGE"
	TypeFixedAmount PromotionType = "FIXED_AMOUNT"
)

// Promotion là chương trình giảm giá gắn với sản phẩm/biến thể/danh mục/thương hiệu
type Promotion struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	PromotionType PromotionType     `json:"promotion_type"`
	Discount      decimal.Decimal   `json:"discount"`
	Active        bool              `json:"active"`
	Priority      int               `json:"priority"`
	Description   string            `json:"description"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Targets       []PromotionTarget `json:"targets"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// IsAvailableOn: active và day nằm trong [StartDate, EndDate]
func (p *Promotion) IsAvailableOn(day time.Time) bool {
	if !p.Active {
		return false
	}
	d := dateOf(day)
	return !d.Before(dateOf(p.StartDate)) && !d.After(dateOf(p.EndDate))
}

// AppliesTo: có ít nhất một target khớp với sản phẩm
func (p *Promotion) AppliesTo(ref catalogModel.ProductRef) bool {
	for _, t := range p.Targets {
		if t.Matches(ref) {
			return true
		}
	}
	return false
}

// PromotionTarget tham chiếu đúng một trong product / variant / category / brand
type PromotionTarget struct {
	ID               int64  `json:"id"`
	PromotionID      int64  `json:"promotion_id"`
	ProductID        *int64 `json:"product_id,omitempty"`
	ProductVariantID *int64 `json:"product_variant_id,omitempty"`
	CategoryID       *int64 `json:"category_id,omitempty"`
	BrandID          *int64 `json:"brand_id,omitempty"`
}

// Kind trả về loại entity và id mà target trỏ tới
func (t PromotionTarget) Kind() (catalogModel.TargetKind, int64) {
	switch {
	case t.ProductID != nil:
		return catalogModel.TargetProduct, *t.ProductID
	case t.ProductVariantID != nil:
		return catalogModel.TargetVariant, *t.ProductVariantID
	case t.CategoryID != nil:
		return catalogModel.TargetCategory, *t.CategoryID
	case t.BrandID != nil:
		return catalogModel.TargetBrand, *t.BrandID
	}
	return "", 0
}

// Matches: target variant chỉ khớp khi tra đúng variant đó
func (t PromotionTarget) Matches(ref catalogModel.ProductRef) bool {
	kind, id := t.Kind()
	switch kind {
	case catalogModel.TargetProduct:
		return id == ref.ProductID
	case catalogModel.TargetVariant:
		return ref.VariantID != nil && id == *ref.VariantID
	case catalogModel.TargetCategory:
		return ref.CategoryID != nil && id == *ref.CategoryID
	case catalogModel.TargetBrand:
		return ref.BrandID != nil && id == *ref.BrandID
	}
	return false
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
