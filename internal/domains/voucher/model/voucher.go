package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherType quyết định "targeting key" của voucher:
//   - ALL:   dùng chung một code
//   - GROUP: danh sách customer chỉ định
//   - RANK:  customer thuộc một hạng thành viên
type VoucherType string

const (
	TypeAll   VoucherType = "ALL"
	TypeGroup VoucherType = "GROUP"
	TypeRank  VoucherType = "RANK"
)

func (t VoucherType) IsValid() bool {
	switch t {
	case TypeAll, TypeGroup, TypeRank:
		return true
	}
	return false
}

// IssuanceStatus là trạng thái của một voucher đã phát cho customer. Chỉ đi một chiều DRAFT -> SENT.
type IssuanceStatus string

const (
	StatusDraft IssuanceStatus = "DRAFT"
	StatusSent  IssuanceStatus = "SENT"
)

type Voucher struct {
	ID                int64           `json:"id"`
	Code              *string         `json:"code,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Active            bool            `json:"active"`
	Discount          decimal.Decimal `json:"discount"`
	MinOrderAmount    decimal.Decimal `json:"min_order_amount"`
	MaxDiscountAmount decimal.Decimal `json:"max_discount_amount"`
	VoucherType       VoucherType     `json:"voucher_type"`
	RankingID         *int64          `json:"ranking_id,omitempty"`
	RankingName       string          `json:"ranking_name,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsAvailableOn: active và day nằm trong [StartDate, EndDate] (so theo ngày)
func (v *Voucher) IsAvailableOn(day time.Time) bool {
	if !v.Active {
		return false
	}
	d := DateOf(day)
	return !d.Before(DateOf(v.StartDate)) && !d.After(DateOf(v.EndDate))
}

// VoucherCustomer là một lượt phát voucher cho một customer.
// Code sinh một lần khi tạo row và không đổi.
type VoucherCustomer struct {
	ID         int64          `json:"id"`
	VoucherID  int64          `json:"voucher_id"`
	CustomerID int64          `json:"customer_id"`
	Code       string         `json:"code"`
	Status     IssuanceStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// NewVoucherCustomer tạo row DRAFT với code mới
func NewVoucherCustomer(voucherID, customerID int64) VoucherCustomer {
	return VoucherCustomer{
		VoucherID:  voucherID,
		CustomerID: customerID,
		Code:       GenerateIssuanceCode(voucherID),
		Status:     StatusDraft,
	}
}

// MarkSent chuyển DRAFT -> SENT. Gọi trên row đã SENT trả về ErrAlreadySent.
func (vc *VoucherCustomer) MarkSent() error {
	if vc.Status != StatusDraft {
		return ErrAlreadySent.
			WithDetail("voucher_customer_id", vc.ID).
			WithDetail("status", vc.Status)
	}
	vc.Status = StatusSent
	return nil
}

func (vc *VoucherCustomer) IsSent() bool {
	return vc.Status == StatusSent
}

// IssuedVoucher là row phát cho customer kèm voucher cha
type IssuedVoucher struct {
	Issuance VoucherCustomer
	Voucher  Voucher
}

// GenerateIssuanceCode = "VC" + voucherID + 8 ký tự hex in hoa
func GenerateIssuanceCode(voucherID int64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("VC%d%s", voucherID, strings.ToUpper(suffix))
}

// DateOf bỏ phần giờ, giữ ngày theo location của t
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
