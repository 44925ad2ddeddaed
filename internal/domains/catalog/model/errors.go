package model

import "ecommerce-backend/internal/shared/apperror"

const (
	ErrCodeProductNotFound  = "CAT_PRODUCT_NOT_FOUND"
	ErrCodeVariantNotFound  = "CAT_VARIANT_NOT_FOUND"
	ErrCodeCategoryNotFound = "CAT_CATEGORY_NOT_FOUND"
	ErrCodeBrandNotFound    = "CAT_BRAND_NOT_FOUND"
)

var (
	ErrProductNotFound  = apperror.NotFound(ErrCodeProductNotFound, "Sản phẩm không tồn tại")
	ErrVariantNotFound  = apperror.NotFound(ErrCodeVariantNotFound, "Biến thể sản phẩm không tồn tại")
	ErrCategoryNotFound = apperror.NotFound(ErrCodeCategoryNotFound, "Danh mục không tồn tại")
	ErrBrandNotFound    = apperror.NotFound(ErrCodeBrandNotFound, "Thương hiệu không tồn tại")
)

// NotFoundFor trả về lỗi NotFound tương ứng với kind, kèm id
func NotFoundFor(kind TargetKind, id int64) *apperror.AppError {
	var base *apperror.AppError
	switch kind {
	case TargetProduct:
		base = ErrProductNotFound
	case TargetVariant:
		base = ErrVariantNotFound
	case TargetCategory:
		base = ErrCategoryNotFound
	default:
		base = ErrBrandNotFound
	}
	return base.WithDetail("id", id)
}
