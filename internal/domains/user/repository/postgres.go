package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/infrastructure/database"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) UserRepository {
	return &PostgresRepository{db: db}
}

const userSelect = `
	SELECT
		u.id, u.email, u.full_name, u.password_hash, u.active, u.kind,
		u.position, u.phone, u.total_spending, u.ranking_id, COALESCE(r.name, ''),
		u.created_at, u.updated_at
	FROM users u
	LEFT JOIN rankings r ON r.id = u.ranking_id
`

// scanUser đọc một row và dựng đúng variant theo kind
func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u             model.User
		kind          string
		position      *string
		phone         *string
		totalSpending *decimal.Decimal
		rankingID     *int64
		rankingName   string
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Active, &kind,
		&position, &phone, &totalSpending, &rankingID, &rankingName,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Kind = model.Kind(kind)
	switch u.Kind {
	case model.KindStaff:
		p := model.PositionStaff
		if position != nil {
			p = *position
		}
		u.Staff = &model.StaffProfile{Position: p}
	default:
		profile := &model.CustomerProfile{RankingID: rankingID, RankingName: rankingName}
		if phone != nil {
			profile.Phone = *phone
		}
		if totalSpending != nil {
			profile.TotalSpending = *totalSpending
		}
		u.Customer = profile
	}

	return &u, nil
}

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, userSelect+" WHERE "+where, arg))
	if database.IsNoRows(err) {
		return nil, nil
	}
	return u, err
}

// FindByID tìm user theo ID
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := r.findOne(ctx, "u.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail tìm user theo email (không phân biệt hoa thường)
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := r.findOne(ctx, "LOWER(u.email) = $1", strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) queryUsers(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// FindCustomersByIDs lấy nhiều customer theo danh sách id
func (r *PostgresRepository) FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := userSelect + ` WHERE u.kind = 'CUSTOMER' AND u.id = ANY($1) ORDER BY u.id`
	users, err := r.queryUsers(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find customers by ids: %w", err)
	}
	return users, nil
}

// ListCustomersByRanking lấy các customer đang active thuộc một ranking
func (r *PostgresRepository) ListCustomersByRanking(ctx context.Context, rankingID int64) ([]model.User, error) {
	query := userSelect + ` WHERE u.kind = 'CUSTOMER' AND u.active = TRUE AND u.ranking_id = $1 ORDER BY u.id`
	users, err := r.queryUsers(ctx, query, rankingID)
	if err != nil {
		return nil, fmt.Errorf("list customers by ranking: %w", err)
	}
	return users, nil
}

// UpdateSpending cập nhật tổng chi tiêu và ranking của customer
func (r *PostgresRepository) UpdateSpending(ctx context.Context, id int64, totalSpending decimal.Decimal, rankingID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET total_spending = $2, ranking_id = $3, updated_at = NOW()
		WHERE id = $1 AND kind = 'CUSTOMER'
	`, id, totalSpending, rankingID)
	if err != nil {
		return fmt.Errorf("update spending: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound.WithDetail("id", id)
	}
	return nil
}
