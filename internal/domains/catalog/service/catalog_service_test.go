package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/shared/apperror"
)

type fakeCatalog struct {
	existing map[model.TargetKind]map[int64]bool
	products map[int64]model.ProductRef
	variants map[int64]int64 // variant -> product
}

func (f *fakeCatalog) Exists(_ context.Context, kind model.TargetKind, id int64) (bool, error) {
	return f.existing[kind][id], nil
}

func (f *fakeCatalog) FindProductRef(_ context.Context, productID int64) (*model.ProductRef, error) {
	ref, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

func (f *fakeCatalog) FindVariantRef(_ context.Context, variantID int64) (*model.ProductRef, error) {
	productID, ok := f.variants[variantID]
	if !ok {
		return nil, nil
	}
	ref := f.products[productID]
	ref.VariantID = &variantID
	return &ref, nil
}

func int64Ptr(v int64) *int64 { return &v }

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		existing: map[model.TargetKind]map[int64]bool{
			model.TargetProduct:  {10: true},
			model.TargetCategory: {3: true},
		},
		products: map[int64]model.ProductRef{
			10: {ProductID: 10, CategoryID: int64Ptr(3), BrandID: int64Ptr(7)},
		},
		variants: map[int64]int64{100: 10},
	}
}

func TestEnsureExists(t *testing.T) {
	svc := NewCatalogService(newFakeCatalog())
	ctx := context.Background()

	assert.NoError(t, svc.EnsureExists(ctx, model.TargetProduct, 10))
	assert.NoError(t, svc.EnsureExists(ctx, model.TargetCategory, 3))

	err := svc.EnsureExists(ctx, model.TargetBrand, 7)
	assert.ErrorIs(t, err, model.ErrBrandNotFound)

	err = svc.EnsureExists(ctx, model.TargetVariant, 1)
	assert.ErrorIs(t, err, model.ErrVariantNotFound)
}

func TestResolveProductRef(t *testing.T) {
	svc := NewCatalogService(newFakeCatalog())
	ctx := context.Background()

	t.Run("by product", func(t *testing.T) {
		ref, err := svc.ResolveProductRef(ctx, int64Ptr(10), nil)
		require.NoError(t, err)
		assert.Nil(t, ref.VariantID)
		assert.Equal(t, int64(7), *ref.BrandID)
	})

	t.Run("by variant", func(t *testing.T) {
		ref, err := svc.ResolveProductRef(ctx, nil, int64Ptr(100))
		require.NoError(t, err)
		assert.Equal(t, int64(10), ref.ProductID)
		assert.Equal(t, int64(100), *ref.VariantID)
	})

	t.Run("variant of another product", func(t *testing.T) {
		_, err := svc.ResolveProductRef(ctx, int64Ptr(11), int64Ptr(100))
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.ResolveProductRef(ctx, int64Ptr(99), nil)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("nothing given", func(t *testing.T) {
		_, err := svc.ResolveProductRef(ctx, nil, nil)
		assert.True(t, apperror.IsValidation(err))
	})
}
