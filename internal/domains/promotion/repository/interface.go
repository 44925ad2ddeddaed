package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	catalogModel "ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/domains/promotion/model"
)

// PromotionRepository: promotion là aggregate root, targets luôn đi kèm khi đọc
type PromotionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *model.Promotion) error
	Update(ctx context.Context, tx pgx.Tx, p *model.Promotion) error
	FindByID(ctx context.Context, id int64) (*model.Promotion, error)
	SetActive(ctx context.Context, tx pgx.Tx, id int64, active bool) error
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
	Search(ctx context.Context, filter model.PromotionFilter) ([]model.Promotion, int, error)

	// Targets
	CreateTargets(ctx context.Context, tx pgx.Tx, targets []model.PromotionTarget) error
	DeleteTargets(ctx context.Context, tx pgx.Tx, promotionID int64) error

	// FindActiveForRef trả promotion active, window chứa day, có target khớp ref (chưa sắp xếp)
	FindActiveForRef(ctx context.Context, ref catalogModel.ProductRef, day time.Time) ([]model.Promotion, error)
}
