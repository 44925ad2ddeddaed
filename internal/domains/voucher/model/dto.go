package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// ========================================
// REQUEST DTOs
// ========================================

// CreateVoucherRequest: chỉ được mang targeting key đúng với VoucherType
//   - ALL:   code
//   - GROUP: customer_ids
//   - RANK:  rank_id
type CreateVoucherRequest struct {
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	Active            *bool           `json:"active"`
	Discount          decimal.Decimal `json:"discount"`
	MinOrderAmount    decimal.Decimal `json:"min_order_amount"`
	MaxDiscountAmount decimal.Decimal `json:"max_discount_amount"`
	VoucherType       VoucherType     `json:"voucher_type"`
	RankID            *int64          `json:"rank_id"`
	CustomerIDs       []int64         `json:"customer_ids"`
}

func (r CreateVoucherRequest) Validate() error {
	rules := commonRules(&r.Name, &r.Description, &r.StartDate, &r.EndDate,
		&r.Discount, &r.MinOrderAmount, &r.MaxDiscountAmount)

	rules = append(rules,
		validation.Field(&r.VoucherType,
			validation.Required.Error("Loại voucher không được để trống"),
			validation.In(TypeAll, TypeGroup, TypeRank).Error("Loại voucher phải là ALL, GROUP hoặc RANK"),
		),
	)
	rules = append(rules, targetingRules(r.VoucherType, &r.Code, &r.RankID, &r.CustomerIDs)...)

	return validation.ValidateStruct(&r, rules...)
}

// IsActive mặc định true khi không truyền
func (r CreateVoucherRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// UpdateVoucherRequest: voucher_type và code không đổi được sau khi tạo.
// Nếu client gửi lên thì phải trùng với giá trị hiện tại.
// CustomerIDs nil = không đụng tới danh sách phát; có giá trị = danh sách mong muốn (chỉ thêm, không xóa).
type UpdateVoucherRequest struct {
	Code              *string         `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	Active            *bool           `json:"active"`
	Discount          decimal.Decimal `json:"discount"`
	MinOrderAmount    decimal.Decimal `json:"min_order_amount"`
	MaxDiscountAmount decimal.Decimal `json:"max_discount_amount"`
	VoucherType       *VoucherType    `json:"voucher_type"`
	RankID            *int64          `json:"rank_id"`
	CustomerIDs       []int64         `json:"customer_ids"`
}

// Validate theo loại của voucher đang cập nhật
func (r UpdateVoucherRequest) Validate(current VoucherType) error {
	rules := commonRules(&r.Name, &r.Description, &r.StartDate, &r.EndDate,
		&r.Discount, &r.MinOrderAmount, &r.MaxDiscountAmount)

	// Code do service so với giá trị cũ. rank_id / customer_ids bỏ trống = giữ nguyên
	rules = append(rules,
		validation.Field(&r.RankID,
			validation.When(current != TypeRank, validation.Nil.Error("Chỉ voucher RANK mới có rank_id")),
		),
		validation.Field(&r.CustomerIDs,
			validation.When(current == TypeGroup,
				validation.Each(validation.Min(int64(1)).Error("Customer ID không hợp lệ")),
			).Else(validation.Empty.Error("Chỉ voucher GROUP mới có danh sách khách hàng")),
		),
	)

	return validation.ValidateStruct(&r, rules...)
}

func commonRules(name, description, startDate, endDate *string, discount, minOrder, maxDiscount *decimal.Decimal) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(name,
			validation.Required.Error("Tên voucher không được để trống"),
			validation.RuneLength(1, 255).Error("Tên voucher tối đa 255 ký tự"),
		),
		validation.Field(description,
			validation.RuneLength(0, 500).Error("Mô tả tối đa 500 ký tự"),
		),
		validation.Field(startDate,
			validation.Required.Error("Ngày bắt đầu không được để trống"),
			validation.Date(DateLayout).Error("Ngày bắt đầu phải có dạng YYYY-MM-DD"),
		),
		validation.Field(endDate,
			validation.Required.Error("Ngày kết thúc không được để trống"),
			validation.Date(DateLayout).Error("Ngày kết thúc phải có dạng YYYY-MM-DD"),
			validation.By(windowRule(startDate)),
		),
		validation.Field(discount, validation.By(positive("Giá trị giảm phải lớn hơn 0"))),
		validation.Field(minOrder, validation.By(nonNegative("Giá trị đơn tối thiểu không được âm"))),
		validation.Field(maxDiscount, validation.By(nonNegative("Mức giảm tối đa không được âm"))),
	}
}

func targetingRules(t VoucherType, code *string, rankID **int64, customerIDs *[]int64) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(code,
			validation.When(t == TypeAll,
				validation.Required.Error("Voucher ALL phải có mã"),
				validation.RuneLength(3, 50).Error("Mã voucher từ 3 đến 50 ký tự"),
			).Else(validation.Empty.Error("Chỉ voucher ALL mới có mã dùng chung")),
		),
		validation.Field(rankID,
			validation.When(t == TypeRank,
				validation.Required.Error("Voucher RANK phải có rank_id"),
			).Else(validation.Nil.Error("Chỉ voucher RANK mới có rank_id")),
		),
		validation.Field(customerIDs,
			validation.When(t == TypeGroup,
				validation.Required.Error("Voucher GROUP phải có danh sách khách hàng"),
				validation.Each(validation.Min(int64(1)).Error("Customer ID không hợp lệ")),
			).Else(validation.Empty.Error("Chỉ voucher GROUP mới có danh sách khách hàng")),
		),
	}
}

func windowRule(startDate *string) validation.RuleFunc {
	return func(value interface{}) error {
		end, err := time.Parse(DateLayout, value.(string))
		if err != nil {
			return nil
		}
		start, err := time.Parse(DateLayout, *startDate)
		if err != nil {
			return nil
		}
		if end.Before(start) {
			return validation.NewError("validation_date_window", "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu")
		}
		return nil
	}
}

func positive(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		if d, ok := value.(decimal.Decimal); ok && !d.IsPositive() {
			return validation.NewError("validation_positive", msg)
		}
		return nil
	}
}

func nonNegative(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		if d, ok := value.(decimal.Decimal); ok && d.IsNegative() {
			return validation.NewError("validation_non_negative", msg)
		}
		return nil
	}
}

// ParseWindow parse start/end đã qua Validate
func ParseWindow(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

// SearchVoucherRequest là query params của GET /admin/vouchers
type SearchVoucherRequest struct {
	Name        string `form:"name"`
	VoucherType string `form:"voucher_type"`
	Active      *bool  `form:"active"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

func (r SearchVoucherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VoucherType,
			validation.In(string(TypeAll), string(TypeGroup), string(TypeRank)).Error("Loại voucher phải là ALL, GROUP hoặc RANK"),
		),
		validation.Field(&r.StartDate, validation.Date(DateLayout).Error("start_date phải có dạng YYYY-MM-DD")),
		validation.Field(&r.EndDate, validation.Date(DateLayout).Error("end_date phải có dạng YYYY-MM-DD")),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(100).Error("limit tối đa 100")),
	)
}

// VoucherFilter là điều kiện tìm kiếm đã chuẩn hóa cho repository
type VoucherFilter struct {
	Name        string
	VoucherType *VoucherType
	Active      *bool
	StartFrom   *time.Time // start_date >= StartFrom
	EndTo       *time.Time // end_date <= EndTo
	Limit       int
	Offset      int
}

// ========================================
// RESPONSE DTOs
// ========================================

type VoucherResponse struct {
	ID                int64           `json:"id"`
	Code              *string         `json:"code,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
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

type VoucherCustomerResponse struct {
	ID         int64          `json:"id"`
	CustomerID int64          `json:"customer_id"`
	Code       string         `json:"code"`
	Status     IssuanceStatus `json:"status"`
}

// VoucherDetailResponse dùng cho admin, kèm các lượt phát
type VoucherDetailResponse struct {
	VoucherResponse
	Customers []VoucherCustomerResponse `json:"customers"`
}

// AvailableVoucherResponse là voucher customer đang dùng được, Code là mã customer nhập khi đặt hàng
type AvailableVoucherResponse struct {
	VoucherID         int64           `json:"voucher_id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	VoucherType       VoucherType     `json:"voucher_type"`
	Discount          decimal.Decimal `json:"discount"`
	MinOrderAmount    decimal.Decimal `json:"min_order_amount"`
	MaxDiscountAmount decimal.Decimal `json:"max_discount_amount"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
}

type VoucherListResult struct {
	Items      []VoucherResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// SendResult tóm tắt một lần gửi
type SendResult struct {
	VoucherID int64 `json:"voucher_id"`
	Sent      int   `json:"sent"`
	Skipped   int   `json:"skipped"`
}

type ExportResult struct {
	VoucherID int64  `json:"voucher_id"`
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
	Rows      int    `json:"rows"`
}
