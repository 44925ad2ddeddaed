package service

import (
	"context"

	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	GetMe(ctx context.Context, userID int64) (*model.UserResponse, error)

	// Customer lookups dùng bởi voucher
	GetCustomer(ctx context.Context, id int64) (*model.User, error)
	FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	ListCustomersByRanking(ctx context.Context, rankingID int64) ([]model.User, error)

	RecordSpending(ctx context.Context, customerID int64, amount decimal.Decimal) (*model.UserResponse, error)
}
