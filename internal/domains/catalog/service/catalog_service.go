package service

import (
	"context"

	"ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/domains/catalog/repository"
	"ecommerce-backend/internal/shared/apperror"
)

type ServiceInterface interface {
	EnsureExists(ctx context.Context, kind model.TargetKind, id int64) error
	ResolveProductRef(ctx context.Context, productID, variantID *int64) (*model.ProductRef, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) ServiceInterface {
	return &catalogService{repo: repo}
}

// EnsureExists trả NotFound theo kind khi entity không tồn tại
func (s *catalogService) EnsureExists(ctx context.Context, kind model.TargetKind, id int64) error {
	ok, err := s.repo.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return model.NotFoundFor(kind, id)
	}
	return nil
}

// ResolveProductRef ưu tiên variant nếu có; variant phải thuộc product khi truyền cả hai
func (s *catalogService) ResolveProductRef(ctx context.Context, productID, variantID *int64) (*model.ProductRef, error) {
	switch {
	case variantID != nil:
		ref, err := s.repo.FindVariantRef(ctx, *variantID)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, model.NotFoundFor(model.TargetVariant, *variantID)
		}
		if productID != nil && *productID != ref.ProductID {
			return nil, apperror.Validation("CAT_VARIANT_MISMATCH", "Biến thể không thuộc sản phẩm").
				WithDetail("product_id", *productID).
				WithDetail("variant_id", *variantID)
		}
		return ref, nil

	case productID != nil:
		ref, err := s.repo.FindProductRef(ctx, *productID)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, model.NotFoundFor(model.TargetProduct, *productID)
		}
		return ref, nil
	}

	return nil, apperror.Validation("CAT_PRODUCT_REQUIRED", "Cần truyền product_id hoặc variant_id")
}
