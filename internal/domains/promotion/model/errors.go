package model

import "ecommerce-backend/internal/shared/apperror"

const (
	ErrCodePromoNotFound = "PROMO_NOT_FOUND"
)

var ErrPromotionNotFound = apperror.NotFound(ErrCodePromoNotFound, "Khuyến mãi không tồn tại")
