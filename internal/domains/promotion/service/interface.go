package service

import (
	"context"

	catalogModel "ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/domains/promotion/model"
)

type ServiceInterface interface {
	// Admin
	CreatePromotion(ctx context.Context, req model.PromotionRequest) (*model.PromotionResponse, error)
	UpdatePromotion(ctx context.Context, id int64, req model.PromotionRequest) (*model.PromotionResponse, error)
	ChangeStatus(ctx context.Context, id int64) (*model.PromotionResponse, error)
	DeletePromotion(ctx context.Context, id int64) error
	SearchPromotions(ctx context.Context, req model.SearchPromotionRequest) (*model.PromotionListResult, error)

	// Public
	GetPromotionByID(ctx context.Context, id int64) (*model.PromotionResponse, error)
	FindApplicablePromotions(ctx context.Context, q model.ApplicableQuery) (*model.ApplicablePromotionsResponse, error)
}

// CatalogLookup là phần của catalog service mà promotion cần
type CatalogLookup interface {
	EnsureExists(ctx context.Context, kind catalogModel.TargetKind, id int64) error
	ResolveProductRef(ctx context.Context, productID, variantID *int64) (*catalogModel.ProductRef, error)
}
