package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	catalogModel "ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/domains/promotion/model"
	"ecommerce-backend/internal/infrastructure/database"
	"ecommerce-backend/internal/shared/utils"
	pkgdb "ecommerce-backend/pkg/database"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) PromotionRepository {
	return &PostgresRepository{db: db}
}

const promotionColumns = `
	p.id, p.name, p.promotion_type, p.discount, p.active, p.priority,
	COALESCE(p.description, ''), p.start_date, p.end_date, p.created_at, p.updated_at
`

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	var (
		p     model.Promotion
		ptype string
	)
	err := row.Scan(
		&p.ID, &p.Name, &ptype, &p.Discount, &p.Active, &p.Priority,
		&p.Description, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PromotionType = model.PromotionType(ptype)
	return &p, nil
}

func collectPromotions(rows pgx.Rows) ([]model.Promotion, error) {
	defer rows.Close()

	var promos []model.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promos = append(promos, *p)
	}
	return promos, rows.Err()
}

// -------------------------------------------------------------------
// PROMOTION
// -------------------------------------------------------------------

func (r *PostgresRepository) Create(ctx context.Context, tx pgx.Tx, p *model.Promotion) error {
	query := `
		INSERT INTO promotions (
			name, promotion_type, discount, active, priority, description,
			start_date, end_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := pkgdb.Q(r.db, tx).QueryRow(ctx, query,
		p.Name,
		string(p.PromotionType),
		p.Discount,
		p.Active,
		p.Priority,
		p.Description,
		p.StartDate,
		p.EndDate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, tx pgx.Tx, p *model.Promotion) error {
	query := `
		UPDATE promotions SET
			name = $2,
			promotion_type = $3,
			discount = $4,
			active = $5,
			priority = $6,
			description = $7,
			start_date = $8,
			end_date = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := pkgdb.Q(r.db, tx).QueryRow(ctx, query,
		p.ID,
		p.Name,
		string(p.PromotionType),
		p.Discount,
		p.Active,
		p.Priority,
		p.Description,
		p.StartDate,
		p.EndDate,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if database.IsNoRows(err) {
		return model.ErrPromotionNotFound.WithDetail("id", p.ID)
	}
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

// FindByID trả nil, nil khi không có
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions p WHERE p.id = $1`

	p, err := scanPromotion(r.db.QueryRow(ctx, query, id))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find promotion by id: %w", err)
	}

	promos := []model.Promotion{*p}
	if err := r.attachTargets(ctx, promos); err != nil {
		return nil, err
	}
	return &promos[0], nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, tx pgx.Tx, id int64, active bool) error {
	tag, err := pkgdb.Q(r.db, tx).Exec(ctx,
		`UPDATE promotions SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set promotion active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPromotionNotFound.WithDetail("id", id)
	}
	return nil
}

// Delete chỉ xóa promotion; targets phải được xóa trước trong cùng tx
func (r *PostgresRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	tag, err := pkgdb.Q(r.db, tx).Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPromotionNotFound.WithDetail("id", id)
	}
	return nil
}

func (r *PostgresRepository) Search(ctx context.Context, filter model.PromotionFilter) ([]model.Promotion, int, error) {
	var (
		conditions []string
		args       []interface{}
		argIndex   = 1
	)

	if filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf(`p.name ILIKE $%d ESCAPE '\'`, argIndex))
		args = append(args, "%"+utils.EscapeLike(filter.Name)+"%")
		argIndex++
	}
	if filter.PromotionType != nil {
		conditions = append(conditions, fmt.Sprintf("p.promotion_type = $%d", argIndex))
		args = append(args, string(*filter.PromotionType))
		argIndex++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("p.active = $%d", argIndex))
		args = append(args, *filter.Active)
		argIndex++
	}
	if filter.StartFrom != nil {
		conditions = append(conditions, fmt.Sprintf("p.start_date >= $%d", argIndex))
		args = append(args, *filter.StartFrom)
		argIndex++
	}
	if filter.EndTo != nil {
		conditions = append(conditions, fmt.Sprintf("p.end_date <= $%d", argIndex))
		args = append(args, *filter.EndTo)
		argIndex++
	}

	where := utils.WhereSQL(conditions)

	// 1. COUNT
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM promotions p `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count promotions: %w", err)
	}
	if total == 0 {
		return []model.Promotion{}, 0, nil
	}

	// 2. PAGE
	query := fmt.Sprintf(`SELECT %s FROM promotions p %s ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d`,
		promotionColumns, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search promotions: %w", err)
	}
	promos, err := collectPromotions(rows)
	if err != nil {
		return nil, 0, err
	}

	// 3. TARGETS cho cả trang trong một query
	if err := r.attachTargets(ctx, promos); err != nil {
		return nil, 0, err
	}
	return promos, total, nil
}

// FindActiveForRef khớp target theo product, variant (nếu có), category, brand
func (r *PostgresRepository) FindActiveForRef(ctx context.Context, ref catalogModel.ProductRef, day time.Time) ([]model.Promotion, error) {
	query := `SELECT ` + promotionColumns + `
		FROM promotions p
		WHERE p.active = true
		  AND p.start_date <= $1
		  AND p.end_date >= $1
		  AND EXISTS (
			SELECT 1 FROM promotion_targets t
			WHERE t.promotion_id = p.id
			  AND (
				t.product_id = $2
				OR ($3::bigint IS NOT NULL AND t.product_variant_id = $3)
				OR ($4::bigint IS NOT NULL AND t.category_id = $4)
				OR ($5::bigint IS NOT NULL AND t.brand_id = $5)
			  )
		  )
	`

	rows, err := r.db.Query(ctx, query, day, ref.ProductID, ref.VariantID, ref.CategoryID, ref.BrandID)
	if err != nil {
		return nil, fmt.Errorf("find applicable promotions: %w", err)
	}
	promos, err := collectPromotions(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachTargets(ctx, promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// -------------------------------------------------------------------
// TARGETS
// -------------------------------------------------------------------

func (r *PostgresRepository) CreateTargets(ctx context.Context, tx pgx.Tx, targets []model.PromotionTarget) error {
	if len(targets) == 0 {
		return nil
	}

	q := pkgdb.Q(r.db, tx)
	query := `
		INSERT INTO promotion_targets (promotion_id, product_id, product_variant_id, category_id, brand_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range targets {
		t := &targets[i]
		err := q.QueryRow(ctx, query, t.PromotionID, t.ProductID, t.ProductVariantID, t.CategoryID, t.BrandID).
			Scan(&t.ID)
		if err != nil {
			if database.IsForeignKeyViolation(err, "") {
				kind, id := t.Kind()
				return catalogModel.NotFoundFor(kind, id).Wrap(err)
			}
			return fmt.Errorf("insert promotion target: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) DeleteTargets(ctx context.Context, tx pgx.Tx, promotionID int64) error {
	if _, err := pkgdb.Q(r.db, tx).Exec(ctx, `DELETE FROM promotion_targets WHERE promotion_id = $1`, promotionID); err != nil {
		return fmt.Errorf("delete promotion targets: %w", err)
	}
	return nil
}

func (r *PostgresRepository) attachTargets(ctx context.Context, promos []model.Promotion) error {
	if len(promos) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(promos))
	index := make(map[int64]int, len(promos))
	for i, p := range promos {
		ids = append(ids, p.ID)
		index[p.ID] = i
		promos[i].Targets = []model.PromotionTarget{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, promotion_id, product_id, product_variant_id, category_id, brand_id
		FROM promotion_targets
		WHERE promotion_id = ANY($1)
		ORDER BY id ASC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load promotion targets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.PromotionTarget
		if err := rows.Scan(&t.ID, &t.PromotionID, &t.ProductID, &t.ProductVariantID, &t.CategoryID, &t.BrandID); err != nil {
			return fmt.Errorf("scan promotion target: %w", err)
		}
		if i, ok := index[t.PromotionID]; ok {
			promos[i].Targets = append(promos[i].Targets, t)
		}
	}
	return rows.Err()
}
