package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"ecommerce-backend/internal/domains/voucher/model"
)

// VoucherRepository: các method ghi nhận tx (nil = dùng pool) để service gom nhiều bước vào một transaction
type VoucherRepository interface {
	// Voucher
	Create(ctx context.Context, tx pgx.Tx, v *model.Voucher) error
	Update(ctx context.Context, tx pgx.Tx, v *model.Voucher) error
	FindByID(ctx context.Context, id int64) (*model.Voucher, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	SetActive(ctx context.Context, tx pgx.Tx, id int64, active bool) error
	Search(ctx context.Context, filter model.VoucherFilter) ([]model.Voucher, int, error)

	// FindActiveAllTypeOn trả voucher ALL đang active có window chứa day
	FindActiveAllTypeOn(ctx context.Context, day time.Time) ([]model.Voucher, error)

	// DeactivateExpired tắt voucher có end_date < day, trả về số voucher bị tắt
	DeactivateExpired(ctx context.Context, day time.Time) (int64, error)

	// Issuance (voucher_customers)
	CreateIssuances(ctx context.Context, tx pgx.Tx, rows []model.VoucherCustomer) error
	FindIssuancesByVoucher(ctx context.Context, voucherID int64) ([]model.VoucherCustomer, error)
	FindIssuedToCustomer(ctx context.Context, customerID int64) ([]model.IssuedVoucher, error)
	MarkIssuanceSent(ctx context.Context, tx pgx.Tx, id int64) error
}
