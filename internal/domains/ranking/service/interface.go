package service

import (
	"context"

	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/ranking/model"
)

type ServiceInterface interface {
	GetByID(ctx context.Context, id int64) (*model.Ranking, error)
	FindByName(ctx context.Context, name string) (*model.Ranking, error)
	List(ctx context.Context) ([]model.Ranking, error)
	FindBySpending(ctx context.Context, amount decimal.Decimal) (*model.Ranking, error)

	// EnsureSeed insert bộ ranking mặc định khi bảng còn trống
	EnsureSeed(ctx context.Context) error
	ValidateBands(ctx context.Context) ([]model.BandIssue, error)
}
