package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/infrastructure/database"
	"ecommerce-backend/internal/shared/utils"
	pkgdb "ecommerce-backend/pkg/database"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) VoucherRepository {
	return &PostgresRepository{db: db}
}

const (
	voucherCodeConstraint  = "vouchers_code_key"
	issuanceCodeConstraint = "voucher_customers_code_key"
	issuancePairConstraint = "voucher_customers_voucher_id_customer_id_key"
)

const voucherColumns = `
	v.id, v.code, v.name, COALESCE(v.description, ''), v.start_date, v.end_date, v.active,
	v.discount, v.min_order_amount, v.max_discount_amount, v.voucher_type,
	v.ranking_id, COALESCE(r.name, ''), v.created_at, v.updated_at
`

const voucherFrom = `
	FROM vouchers v
	LEFT JOIN rankings r ON r.id = v.ranking_id
`

func scanVoucher(row pgx.Row) (*model.Voucher, error) {
	var (
		v           model.Voucher
		voucherType string
	)
	err := row.Scan(
		&v.ID, &v.Code, &v.Name, &v.Description, &v.StartDate, &v.EndDate, &v.Active,
		&v.Discount, &v.MinOrderAmount, &v.MaxDiscountAmount, &voucherType,
		&v.RankingID, &v.RankingName, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.VoucherType = model.VoucherType(voucherType)
	return &v, nil
}

func collectVouchers(rows pgx.Rows) ([]model.Voucher, error) {
	defer rows.Close()

	var vouchers []model.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		vouchers = append(vouchers, *v)
	}
	return vouchers, rows.Err()
}

// -------------------------------------------------------------------
// VOUCHER
// -------------------------------------------------------------------

// Create insert voucher, set ID/CreatedAt/UpdatedAt vào v
func (r *PostgresRepository) Create(ctx context.Context, tx pgx.Tx, v *model.Voucher) error {
	query := `
		INSERT INTO vouchers (
			code, name, description, start_date, end_date, active,
			discount, min_order_amount, max_discount_amount, voucher_type, ranking_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := pkgdb.Q(r.db, tx).QueryRow(ctx, query,
		v.Code,
		v.Name,
		v.Description,
		v.StartDate,
		v.EndDate,
		v.Active,
		v.Discount,
		v.MinOrderAmount,
		v.MaxDiscountAmount,
		string(v.VoucherType),
		v.RankingID,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, voucherCodeConstraint) {
			return model.ErrCodeAlreadyUsed.WithDetail("code", v.Code).Wrap(err)
		}
		return fmt.Errorf("insert voucher: %w", err)
	}
	return nil
}

// Update ghi đè các field được phép sửa; voucher_type và code không nằm trong câu lệnh
func (r *PostgresRepository) Update(ctx context.Context, tx pgx.Tx, v *model.Voucher) error {
	query := `
		UPDATE vouchers SET
			name = $2,
			description = $3,
			start_date = $4,
			end_date = $5,
			active = $6,
			discount = $7,
			min_order_amount = $8,
			max_discount_amount = $9,
			ranking_id = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := pkgdb.Q(r.db, tx).QueryRow(ctx, query,
		v.ID,
		v.Name,
		v.Description,
		v.StartDate,
		v.EndDate,
		v.Active,
		v.Discount,
		v.MinOrderAmount,
		v.MaxDiscountAmount,
		v.RankingID,
	).Scan(&v.UpdatedAt)
	if database.IsNoRows(err) {
		return model.ErrVoucherNotFound.WithDetail("id", v.ID)
	}
	if err != nil {
		return fmt.Errorf("update voucher: %w", err)
	}
	return nil
}

// FindByID trả nil, nil khi không có
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*model.Voucher, error) {
	query := `SELECT ` + voucherColumns + voucherFrom + ` WHERE v.id = $1`

	v, err := scanVoucher(r.db.QueryRow(ctx, query, id))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find voucher by id: %w", err)
	}
	return v, nil
}

// CodeExists kiểm tra code trên cả voucher ALL và code đã phát cho customer
func (r *PostgresRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM vouchers WHERE UPPER(code) = UPPER($1))
		    OR EXISTS(SELECT 1 FROM voucher_customers WHERE UPPER(code) = UPPER($1))
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("check voucher code: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, tx pgx.Tx, id int64, active bool) error {
	tag, err := pkgdb.Q(r.db, tx).Exec(ctx,
		`UPDATE vouchers SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set voucher active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVoucherNotFound.WithDetail("id", id)
	}
	return nil
}

// Search lọc + phân trang, trả về items và tổng số bản ghi khớp filter
func (r *PostgresRepository) Search(ctx context.Context, filter model.VoucherFilter) ([]model.Voucher, int, error) {
	var (
		conditions []string
		args       []interface{}
		argIndex   = 1
	)

	if filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf(`v.name ILIKE $%d ESCAPE '\'`, argIndex))
		args = append(args, "%"+utils.EscapeLike(filter.Name)+"%")
		argIndex++
	}
	if filter.VoucherType != nil {
		conditions = append(conditions, fmt.Sprintf("v.voucher_type = $%d", argIndex))
		args = append(args, string(*filter.VoucherType))
		argIndex++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("v.active = $%d", argIndex))
		args = append(args, *filter.Active)
		argIndex++
	}
	if filter.StartFrom != nil {
		conditions = append(conditions, fmt.Sprintf("v.start_date >= $%d", argIndex))
		args = append(args, *filter.StartFrom)
		argIndex++
	}
	if filter.EndTo != nil {
		conditions = append(conditions, fmt.Sprintf("v.end_date <= $%d", argIndex))
		args = append(args, *filter.EndTo)
		argIndex++
	}

	where := utils.WhereSQL(conditions)

	// 1. COUNT
	var total int
	countQuery := `SELECT COUNT(*) FROM vouchers v ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vouchers: %w", err)
	}
	if total == 0 {
		return []model.Voucher{}, 0, nil
	}

	// 2. PAGE
	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY v.created_at DESC, v.id DESC LIMIT $%d OFFSET $%d`,
		voucherColumns, voucherFrom, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search vouchers: %w", err)
	}
	vouchers, err := collectVouchers(rows)
	if err != nil {
		return nil, 0, err
	}
	return vouchers, total, nil
}

func (r *PostgresRepository) FindActiveAllTypeOn(ctx context.Context, day time.Time) ([]model.Voucher, error) {
	query := `SELECT ` + voucherColumns + voucherFrom + `
		WHERE v.voucher_type = 'ALL'
		  AND v.active = true
		  AND v.start_date <= $1
		  AND v.end_date >= $1
		ORDER BY v.end_date ASC, v.id ASC
	`

	rows, err := r.db.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("find ALL vouchers: %w", err)
	}
	return collectVouchers(rows)
}

func (r *PostgresRepository) DeactivateExpired(ctx context.Context, day time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE vouchers SET active = false, updated_at = NOW() WHERE active = true AND end_date < $1`, day)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired vouchers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// -------------------------------------------------------------------
// ISSUANCE
// -------------------------------------------------------------------

const issuanceColumns = `vc.id, vc.voucher_id, vc.customer_id, vc.code, vc.status, vc.created_at, vc.updated_at`

func scanIssuance(row pgx.Row, vc *model.VoucherCustomer, extra ...interface{}) error {
	var status string
	dest := append([]interface{}{
		&vc.ID, &vc.VoucherID, &vc.CustomerID, &vc.Code, &status, &vc.CreatedAt, &vc.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	vc.Status = model.IssuanceStatus(status)
	return nil
}

// CreateIssuances insert các row DRAFT, set ID cho từng phần tử
func (r *PostgresRepository) CreateIssuances(ctx context.Context, tx pgx.Tx, rows []model.VoucherCustomer) error {
	if len(rows) == 0 {
		return nil
	}

	q := pkgdb.Q(r.db, tx)
	query := `
		INSERT INTO voucher_customers (voucher_id, customer_id, code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	for i := range rows {
		row := &rows[i]
		err := q.QueryRow(ctx, query, row.VoucherID, row.CustomerID, row.Code, string(row.Status)).
			Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			switch {
			case database.IsUniqueViolation(err, issuancePairConstraint):
				return model.ErrAlreadyIssued.
					WithDetail("voucher_id", row.VoucherID).
					WithDetail("customer_id", row.CustomerID).
					Wrap(err)
			case database.IsUniqueViolation(err, issuanceCodeConstraint):
				return model.ErrCodeAlreadyUsed.WithDetail("code", row.Code).Wrap(err)
			}
			return fmt.Errorf("insert voucher customer: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) FindIssuancesByVoucher(ctx context.Context, voucherID int64) ([]model.VoucherCustomer, error) {
	query := `SELECT ` + issuanceColumns + ` FROM voucher_customers vc WHERE vc.voucher_id = $1 ORDER BY vc.id ASC`

	rows, err := r.db.Query(ctx, query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("find voucher customers: %w", err)
	}
	defer rows.Close()

	var out []model.VoucherCustomer
	for rows.Next() {
		var vc model.VoucherCustomer
		if err := scanIssuance(rows, &vc); err != nil {
			return nil, fmt.Errorf("scan voucher customer: %w", err)
		}
		out = append(out, vc)
	}
	return out, rows.Err()
}

// FindIssuedToCustomer trả các lượt phát của customer kèm voucher cha (không lọc ngày)
func (r *PostgresRepository) FindIssuedToCustomer(ctx context.Context, customerID int64) ([]model.IssuedVoucher, error) {
	query := `SELECT ` + issuanceColumns + `, ` + voucherColumns + `
		FROM voucher_customers vc
		JOIN vouchers v ON v.id = vc.voucher_id
		LEFT JOIN rankings r ON r.id = v.ranking_id
		WHERE vc.customer_id = $1
		ORDER BY v.end_date ASC, vc.id ASC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("find issued vouchers: %w", err)
	}
	defer rows.Close()

	var out []model.IssuedVoucher
	for rows.Next() {
		var (
			item        model.IssuedVoucher
			voucherType string
		)
		v := &item.Voucher
		err := scanIssuance(rows, &item.Issuance,
			&v.ID, &v.Code, &v.Name, &v.Description, &v.StartDate, &v.EndDate, &v.Active,
			&v.Discount, &v.MinOrderAmount, &v.MaxDiscountAmount, &voucherType,
			&v.RankingID, &v.RankingName, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan issued voucher: %w", err)
		}
		v.VoucherType = model.VoucherType(voucherType)
		out = append(out, item)
	}
	return out, rows.Err()
}

// MarkIssuanceSent chỉ cập nhật row đang DRAFT
func (r *PostgresRepository) MarkIssuanceSent(ctx context.Context, tx pgx.Tx, id int64) error {
	tag, err := pkgdb.Q(r.db, tx).Exec(ctx, `
		UPDATE voucher_customers
		SET status = 'SENT', updated_at = NOW()
		WHERE id = $1 AND status = 'DRAFT'
	`, id)
	if err != nil {
		return fmt.Errorf("mark voucher customer sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAlreadySent.WithDetail("voucher_customer_id", id)
	}
	return nil
}
