package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	catalogModel "ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/domains/promotion/model"
)

// ====== PROMOTION REPOSITORY (in-memory) ======

type fakeRepo struct {
	promos       map[int64]*model.Promotion
	targets      []model.PromotionTarget
	nextPromoID  int64
	nextTargetID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{promos: map[int64]*model.Promotion{}}
}

func (f *fakeRepo) Create(_ context.Context, _ pgx.Tx, p *model.Promotion) error {
	f.nextPromoID++
	p.ID = f.nextPromoID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	cp.Targets = nil
	f.promos[p.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, _ pgx.Tx, p *model.Promotion) error {
	if _, ok := f.promos[p.ID]; !ok {
		return model.ErrPromotionNotFound
	}
	cp := *p
	cp.Targets = nil
	f.promos[p.ID] = &cp
	return nil
}

func (f *fakeRepo) withTargets(p *model.Promotion) model.Promotion {
	cp := *p
	cp.Targets = []model.PromotionTarget{}
	for _, t := range f.targets {
		if t.PromotionID == p.ID {
			cp.Targets = append(cp.Targets, t)
		}
	}
	return cp
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Promotion, error) {
	p, ok := f.promos[id]
	if !ok {
		return nil, nil
	}
	out := f.withTargets(p)
	return &out, nil
}

func (f *fakeRepo) SetActive(_ context.Context, _ pgx.Tx, id int64, active bool) error {
	p, ok := f.promos[id]
	if !ok {
		return model.ErrPromotionNotFound
	}
	p.Active = active
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ pgx.Tx, id int64) error {
	if _, ok := f.promos[id]; !ok {
		return model.ErrPromotionNotFound
	}
	delete(f.promos, id)
	return nil
}

func (f *fakeRepo) sorted() []*model.Promotion {
	out := make([]*model.Promotion, 0, len(f.promos))
	for _, p := range f.promos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRepo) Search(_ context.Context, filter model.PromotionFilter) ([]model.Promotion, int, error) {
	var matched []model.Promotion
	for _, p := range f.sorted() {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.PromotionType != nil && p.PromotionType != *filter.PromotionType {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		matched = append(matched, f.withTargets(p))
	}

	total := len(matched)
	if filter.Offset >= total {
		return []model.Promotion{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (f *fakeRepo) CreateTargets(_ context.Context, _ pgx.Tx, targets []model.PromotionTarget) error {
	for i := range targets {
		f.nextTargetID++
		targets[i].ID = f.nextTargetID
		f.targets = append(f.targets, targets[i])
	}
	return nil
}

func (f *fakeRepo) DeleteTargets(_ context.Context, _ pgx.Tx, promotionID int64) error {
	kept := f.targets[:0]
	for _, t := range f.targets {
		if t.PromotionID != promotionID {
			kept = append(kept, t)
		}
	}
	f.targets = kept
	return nil
}

// FindActiveForRef trả mọi promotion; service tự lọc theo ngày và target
func (f *fakeRepo) FindActiveForRef(_ context.Context, _ catalogModel.ProductRef, _ time.Time) ([]model.Promotion, error) {
	var out []model.Promotion
	for _, p := range f.sorted() {
		out = append(out, f.withTargets(p))
	}
	return out, nil
}

func (f *fakeRepo) targetsOf(promotionID int64) []model.PromotionTarget {
	var out []model.PromotionTarget
	for _, t := range f.targets {
		if t.PromotionID == promotionID {
			out = append(out, t)
		}
	}
	return out
}

// ====== CATALOG ======

type catalogKey struct {
	kind catalogModel.TargetKind
	id   int64
}

type fakeCatalog struct {
	existing map[catalogKey]bool
	products map[int64]catalogModel.ProductRef
	variants map[int64]catalogModel.ProductRef
}

func ptr(v int64) *int64 { return &v }

// Product 10 (category 3, brand 7) có variant 100 và 101
func newFakeCatalog() *fakeCatalog {
	c := &fakeCatalog{
		existing: map[catalogKey]bool{},
		products: map[int64]catalogModel.ProductRef{},
		variants: map[int64]catalogModel.ProductRef{},
	}
	c.existing[catalogKey{catalogModel.TargetProduct, 10}] = true
	c.existing[catalogKey{catalogModel.TargetProduct, 11}] = true
	c.existing[catalogKey{catalogModel.TargetVariant, 100}] = true
	c.existing[catalogKey{catalogModel.TargetVariant, 101}] = true
	c.existing[catalogKey{catalogModel.TargetCategory, 3}] = true
	c.existing[catalogKey{catalogModel.TargetBrand, 7}] = true

	c.products[10] = catalogModel.ProductRef{ProductID: 10, CategoryID: ptr(3), BrandID: ptr(7)}
	c.products[11] = catalogModel.ProductRef{ProductID: 11}
	c.variants[100] = catalogModel.ProductRef{ProductID: 10, VariantID: ptr(100), CategoryID: ptr(3), BrandID: ptr(7)}
	c.variants[101] = catalogModel.ProductRef{ProductID: 10, VariantID: ptr(101), CategoryID: ptr(3), BrandID: ptr(7)}
	return c
}

func (c *fakeCatalog) EnsureExists(_ context.Context, kind catalogModel.TargetKind, id int64) error {
	if !c.existing[catalogKey{kind, id}] {
		return catalogModel.NotFoundFor(kind, id)
	}
	return nil
}

func (c *fakeCatalog) ResolveProductRef(_ context.Context, productID, variantID *int64) (*catalogModel.ProductRef, error) {
	if variantID != nil {
		ref, ok := c.variants[*variantID]
		if !ok {
			return nil, catalogModel.NotFoundFor(catalogModel.TargetVariant, *variantID)
		}
		return &ref, nil
	}
	if productID != nil {
		ref, ok := c.products[*productID]
		if !ok {
			return nil, catalogModel.NotFoundFor(catalogModel.TargetProduct, *productID)
		}
		return &ref, nil
	}
	return nil, catalogModel.ErrProductNotFound
}
