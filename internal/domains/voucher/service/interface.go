package service

import (
	"context"
	"io"

	rankingModel "ecommerce-backend/internal/domains/ranking/model"
	userModel "ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/shared"
)

type ServiceInterface interface {
	// Admin
	CreateVoucher(ctx context.Context, req model.CreateVoucherRequest) (*model.VoucherDetailResponse, error)
	UpdateVoucher(ctx context.Context, id int64, req model.UpdateVoucherRequest) (*model.VoucherDetailResponse, error)
	ChangeStatus(ctx context.Context, id int64) (*model.VoucherResponse, error)
	GetVoucherByID(ctx context.Context, id int64) (*model.VoucherDetailResponse, error)
	SearchVouchers(ctx context.Context, req model.SearchVoucherRequest) (*model.VoucherListResult, error)
	SendVoucherToCustomers(ctx context.Context, id int64) (*model.SendResult, error)
	ExportIssuance(ctx context.Context, id int64) (*model.ExportResult, error)

	// Customer
	GetAvailableVouchersForCustomer(ctx context.Context, customerID int64) ([]model.AvailableVoucherResponse, error)

	// Scheduled
	DeactivateExpired(ctx context.Context) (int64, error)
}

// CustomerLookup là phần của user service mà voucher cần
type CustomerLookup interface {
	GetCustomer(ctx context.Context, id int64) (*userModel.User, error)
	FindCustomersByIDs(ctx context.Context, ids []int64) ([]userModel.User, error)
	ListCustomersByRanking(ctx context.Context, rankingID int64) ([]userModel.User, error)
}

// RankingLookup trả NotFound khi không có ranking
type RankingLookup interface {
	GetByID(ctx context.Context, id int64) (*rankingModel.Ranking, error)
}

// Dispatcher đẩy email voucher sang worker
type Dispatcher interface {
	DispatchVoucherEmail(ctx context.Context, payload shared.VoucherEmailPayload) error
}

// FileStorage lưu file export, trả về URL truy cập
type FileStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
