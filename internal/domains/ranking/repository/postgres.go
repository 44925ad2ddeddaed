package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-backend/internal/domains/ranking/model"
	"ecommerce-backend/internal/infrastructure/database"
	pkgdb "ecommerce-backend/pkg/database"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) RankingRepository {
	return &PostgresRepository{db: db}
}

const rankingColumns = `id, name, COALESCE(description, ''), min_spending, max_spending, discount_rate, created_at, updated_at`

func scanRanking(row pgx.Row) (*model.Ranking, error) {
	var r model.Ranking
	err := row.Scan(
		&r.ID, &r.Name, &r.Description,
		&r.MinSpending, &r.MaxSpending, &r.DiscountRate,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindByID tìm ranking theo ID
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*model.Ranking, error) {
	query := `SELECT ` + rankingColumns + ` FROM rankings WHERE id = $1`

	ranking, err := scanRanking(r.db.QueryRow(ctx, query, id))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ranking by id: %w", err)
	}
	return ranking, nil
}

// FindByName tìm ranking theo tên (so khớp chính xác)
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*model.Ranking, error) {
	query := `SELECT ` + rankingColumns + ` FROM rankings WHERE name = $1`

	ranking, err := scanRanking(r.db.QueryRow(ctx, query, name))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ranking by name: %w", err)
	}
	return ranking, nil
}

// List trả về toàn bộ ranking theo min_spending tăng dần
func (r *PostgresRepository) List(ctx context.Context) ([]model.Ranking, error) {
	query := `SELECT ` + rankingColumns + ` FROM rankings ORDER BY min_spending ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}
	defer rows.Close()

	var rankings []model.Ranking
	for rows.Next() {
		ranking, err := scanRanking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		rankings = append(rankings, *ranking)
	}
	return rankings, rows.Err()
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rankings`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count rankings: %w", err)
	}
	return total, nil
}

// CreateMany insert nhiều ranking, bỏ qua tên đã tồn tại
func (r *PostgresRepository) CreateMany(ctx context.Context, tx pgx.Tx, rankings []model.Ranking) error {
	q := pkgdb.Q(r.db, tx)

	query := `
		INSERT INTO rankings (name, description, min_spending, max_spending, discount_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (name) DO NOTHING
	`
	for _, ranking := range rankings {
		_, err := q.Exec(ctx, query,
			ranking.Name,
			ranking.Description,
			ranking.MinSpending,
			ranking.MaxSpending,
			ranking.DiscountRate,
		)
		if err != nil {
			return fmt.Errorf("insert ranking %s: %w", ranking.Name, err)
		}
	}
	return nil
}
