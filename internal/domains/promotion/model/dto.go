package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	catalogModel "ecommerce-backend/internal/domains/catalog/model"
)

const DateLayout = "2006-01-02"

// ========================================
// REQUEST DTOs
// ========================================

// PromotionRequest dùng cho cả tạo mới và cập nhật (update thay toàn bộ targets)
type PromotionRequest struct {
	Name          string                   `json:"name"`
	PromotionType PromotionType            `json:"promotion_type"`
	Discount      decimal.Decimal          `json:"discount"`
	Active        *bool                    `json:"active"`
	Priority      int                      `json:"priority"`
	Description   string                   `json:"description"`
	StartDate     string                   `json:"start_date"`
	EndDate       string                   `json:"end_date"`
	Targets       []PromotionTargetRequest `json:"promotion_targets"`
}

func (r PromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Tên khuyến mãi không được để trống"),
			validation.RuneLength(1, 255).Error("Tên khuyến mãi tối đa 255 ký tự"),
		),
		validation.Field(&r.PromotionType,
			validation.Required.Error("Loại khuyến mãi không được để trống"),
			validation.In(TypePercentage, TypeFixedAmount).Error("Loại khuyến mãi phải là PERCENTAGE hoặc FIXED_AMOUNT"),
		),
		validation.Field(&r.Discount, validation.By(func(interface{}) error {
			if !r.Discount.IsPositive() {
				return validation.NewError("validation_positive", "Giá trị giảm phải lớn hơn 0")
			}
			if r.PromotionType == TypePercentage && r.Discount.GreaterThan(decimal.NewFromInt(100)) {
				return validation.NewError("validation_percentage", "Phần trăm giảm tối đa 100")
			}
			return nil
		})),
		validation.Field(&r.Active, validation.NotNil.Error("Trạng thái không được để trống")),
		validation.Field(&r.Priority,
			validation.Required.Error("Độ ưu tiên không được để trống"),
			validation.Min(1).Error("Độ ưu tiên nhỏ nhất là 1"),
		),
		validation.Field(&r.Description, validation.RuneLength(0, 500).Error("Mô tả tối đa 500 ký tự")),
		validation.Field(&r.StartDate,
			validation.Required.Error("Ngày bắt đầu không được để trống"),
			validation.Date(DateLayout).Error("Ngày bắt đầu phải có dạng YYYY-MM-DD"),
		),
		validation.Field(&r.EndDate,
			validation.Required.Error("Ngày kết thúc không được để trống"),
			validation.Date(DateLayout).Error("Ngày kết thúc phải có dạng YYYY-MM-DD"),
			validation.By(func(interface{}) error {
				start, err1 := time.Parse(DateLayout, r.StartDate)
				end, err2 := time.Parse(DateLayout, r.EndDate)
				if err1 == nil && err2 == nil && end.Before(start) {
					return validation.NewError("validation_date_window", "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu")
				}
				return nil
			}),
		),
		// từng phần tử tự Validate (exactly-one)
		validation.Field(&r.Targets),
	)
}

// Window parse start/end đã qua Validate
func (r PromotionRequest) Window() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type SearchPromotionRequest struct {
	Name          string `form:"name"`
	PromotionType string `form:"promotion_type"`
	Active        *bool  `form:"active"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

func (r SearchPromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PromotionType,
			validation.In(string(TypePercentage), string(TypeFixedAmount)).Error("Loại khuyến mãi phải là PERCENTAGE hoặc FIXED_AMOUNT"),
		),
		validation.Field(&r.StartDate, validation.Date(DateLayout).Error("start_date phải có dạng YYYY-MM-DD")),
		validation.Field(&r.EndDate, validation.Date(DateLayout).Error("end_date phải có dạng YYYY-MM-DD")),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(100).Error("limit tối đa 100")),
	)
}

type PromotionFilter struct {
	Name          string
	PromotionType *PromotionType
	Active        *bool
	StartFrom     *time.Time
	EndTo         *time.Time
	Limit         int
	Offset        int
}

// ApplicableQuery là query params của GET /promotions/applicable.
// Price tùy chọn, có thì tính luôn giá sau giảm của promotion thắng.
type ApplicableQuery struct {
	ProductID *int64
	VariantID *int64
	Price     *decimal.Decimal
}

// ========================================
// RESPONSE DTOs
// ========================================

type PromotionTargetResponse struct {
	ID               int64  `json:"id"`
	ProductID        *int64 `json:"product_id,omitempty"`
	ProductVariantID *int64 `json:"product_variant_id,omitempty"`
	CategoryID       *int64 `json:"category_id,omitempty"`
	BrandID          *int64 `json:"brand_id,omitempty"`
}

type PromotionResponse struct {
	ID            int64                     `json:"id"`
	Name          string                    `json:"name"`
	PromotionType PromotionType             `json:"promotion_type"`
	Discount      decimal.Decimal           `json:"discount"`
	Active        bool                      `json:"active"`
	Priority      int                       `json:"priority"`
	Description   string                    `json:"description"`
	StartDate     string                    `json:"start_date"`
	EndDate       string                    `json:"end_date"`
	Targets       []PromotionTargetResponse `json:"promotion_targets"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

type PromotionListResult struct {
	Items      []PromotionResponse `json:"items"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// ApplicablePromotionsResponse: Winner là phần tử đầu của Promotions
type ApplicablePromotionsResponse struct {
	Product    catalogModel.ProductRef `json:"product"`
	Winner     *PromotionResponse      `json:"winner"`
	Promotions []PromotionResponse     `json:"promotions"`
	Price      *decimal.Decimal        `json:"price,omitempty"`
	Discount   *decimal.Decimal        `json:"discount,omitempty"`
	FinalPrice *decimal.Decimal        `json:"final_price,omitempty"`
}
