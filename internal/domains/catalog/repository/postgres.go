package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-backend/internal/domains/catalog/model"
	"ecommerce-backend/internal/infrastructure/database"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) CatalogRepository {
	return &PostgresRepository{db: db}
}

// Exists kiểm tra entity catalog theo kind
func (r *PostgresRepository) Exists(ctx context.Context, kind model.TargetKind, id int64) (bool, error) {
	table, err := kind.Table()
	if err != nil {
		return false, err
	}

	// table lấy từ whitelist của TargetKind, không phải input
	query := `SELECT EXISTS(SELECT 1 FROM ` + table + ` WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s exists: %w", table, err)
	}
	return exists, nil
}

// FindProductRef lấy category/brand của product
func (r *PostgresRepository) FindProductRef(ctx context.Context, productID int64) (*model.ProductRef, error) {
	query := `SELECT id, category_id, brand_id FROM products WHERE id = $1`

	var ref model.ProductRef
	err := r.db.QueryRow(ctx, query, productID).Scan(&ref.ProductID, &ref.CategoryID, &ref.BrandID)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product ref: %w", err)
	}
	return &ref, nil
}

// FindVariantRef lấy variant kèm product cha và category/brand của product đó
func (r *PostgresRepository) FindVariantRef(ctx context.Context, variantID int64) (*model.ProductRef, error) {
	query := `
		SELECT v.id, p.id, p.category_id, p.brand_id
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		WHERE v.id = $1
	`

	var (
		ref model.ProductRef
		vid int64
	)
	err := r.db.QueryRow(ctx, query, variantID).Scan(&vid, &ref.ProductID, &ref.CategoryID, &ref.BrandID)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find variant ref: %w", err)
	}
	ref.VariantID = &vid
	return &ref, nil
}
