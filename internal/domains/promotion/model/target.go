package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PromotionTargetRequest: đúng một trong bốn id được set
type PromotionTargetRequest struct {
	ProductID        *int64 `json:"product_id"`
	ProductVariantID *int64 `json:"product_variant_id"`
	CategoryID       *int64 `json:"category_id"`
	BrandID          *int64 `json:"brand_id"`
}

var errExactlyOneTarget = validation.NewError(
	"validation_promotion_target_exactly_one",
	"Mỗi target phải có đúng một trong product_id, product_variant_id, category_id, brand_id",
)

func (r PromotionTargetRequest) Validate() error {
	set := 0
	for _, id := range []*int64{r.ProductID, r.ProductVariantID, r.CategoryID, r.BrandID} {
		if id != nil {
			set++
		}
	}
	if set != 1 {
		return errExactlyOneTarget
	}

	// Min bỏ qua giá trị 0 nên cần Required khi id được set
	positive := func(id *int64) validation.Rule {
		return validation.When(id != nil,
			validation.Required.Error("ID phải lớn hơn 0"),
			validation.Min(int64(1)).Error("ID phải lớn hơn 0"),
		)
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, positive(r.ProductID)),
		validation.Field(&r.ProductVariantID, positive(r.ProductVariantID)),
		validation.Field(&r.CategoryID, positive(r.CategoryID)),
		validation.Field(&r.BrandID, positive(r.BrandID)),
	)
}

// ToPromotionTargets dựng một PromotionTarget cho mỗi request (đã qua Validate)
func ToPromotionTargets(reqs []PromotionTargetRequest, promotionID int64) []PromotionTarget {
	targets := make([]PromotionTarget, 0, len(reqs))
	for _, r := range reqs {
		targets = append(targets, PromotionTarget{
			PromotionID:      promotionID,
			ProductID:        r.ProductID,
			ProductVariantID: r.ProductVariantID,
			CategoryID:       r.CategoryID,
			BrandID:          r.BrandID,
		})
	}
	return targets
}
