package shared

// Asynq task types
const (
	TypeSendVoucherEmail          = "email:voucher"
	TypeDeactivateExpiredVouchers = "voucher:deactivate_expired"
	TypeValidateRankingBands      = "ranking:validate_bands"
)

// Asynq queues
const (
	QueueNotification = "notification"
	QueueMaintenance  = "maintenance"
	QueueDefault      = "default"
)

// VoucherEmailPayload là dữ liệu gửi kèm task email:voucher.
// Chỉ chứa dữ liệu đã resolve sẵn để worker không cần truy cập database.
type VoucherEmailPayload struct {
	VoucherID         int64  `json:"voucherId"`
	VoucherCustomerID int64  `json:"voucherCustomerId"`
	Email             string `json:"email"`
	CustomerName      string `json:"customerName"`
	VoucherName       string `json:"voucherName"`
	Description       string `json:"description"`
	Code              string `json:"code"`
	Discount          string `json:"discount"`
	MinOrderAmount    string `json:"minOrderAmount"`
	MaxDiscountAmount string `json:"maxDiscountAmount"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
}

// DeactivateExpiredVouchersPayload cho scheduled job, hiện không có tham số
type DeactivateExpiredVouchersPayload struct{}

// ValidateRankingBandsPayload cho scheduled job kiểm tra band ranking
type ValidateRankingBandsPayload struct{}
