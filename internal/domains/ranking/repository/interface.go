package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"ecommerce-backend/internal/domains/ranking/model"
)

// RankingRepository định nghĩa data access cho ranking.
// Read trả về (nil, nil) khi không tìm thấy.
type RankingRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Ranking, error)
	FindByName(ctx context.Context, name string) (*model.Ranking, error)
	List(ctx context.Context) ([]model.Ranking, error)
	Count(ctx context.Context) (int, error)

	CreateMany(ctx context.Context, tx pgx.Tx, rankings []model.Ranking) error
}
