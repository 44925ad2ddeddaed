package repository

import (
	"context"

	"ecommerce-backend/internal/domains/catalog/model"
)

// CatalogRepository chỉ đọc, phục vụ kiểm tra target của promotion
type CatalogRepository interface {
	Exists(ctx context.Context, kind model.TargetKind, id int64) (bool, error)
	FindProductRef(ctx context.Context, productID int64) (*model.ProductRef, error)
	FindVariantRef(ctx context.Context, variantID int64) (*model.ProductRef, error)
}
