package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/user/model"
)

// UserRepository data access cho bảng users (customer và staff chung một bảng, phân biệt bằng kind).
// Read trả về (nil, nil) khi không tìm thấy.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindCustomersByIDs chỉ trả về user kind CUSTOMER, bỏ qua id không tồn tại
	FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	ListCustomersByRanking(ctx context.Context, rankingID int64) ([]model.User, error)

	UpdateSpending(ctx context.Context, id int64, totalSpending decimal.Decimal, rankingID int64) error
}
