package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email không được để trống"),
			is.Email.Error("Email không hợp lệ"),
		),
		validation.Field(&r.Password, validation.Required.Error("Mật khẩu không được để trống")),
	)
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

// ========================================
// USER DTOs
// ========================================

type UserResponse struct {
	ID            int64            `json:"id"`
	Email         string           `json:"email"`
	FullName      string           `json:"full_name"`
	Kind          Kind             `json:"kind"`
	Role          string           `json:"role"`
	TotalSpending *decimal.Decimal `json:"total_spending,omitempty"`
	RankingName   string           `json:"ranking_name,omitempty"`
}

// ToUserResponse map User -> UserResponse
func ToUserResponse(u *User) UserResponse {
	res := UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Kind:     u.Kind,
		Role:     u.Role(),
	}
	if u.Customer != nil {
		spending := u.Customer.TotalSpending
		res.TotalSpending = &spending
		res.RankingName = u.Customer.RankingName
	}
	return res
}

// RecordSpendingRequest ghi nhận chi tiêu của customer (đơn hàng hoàn tất)
type RecordSpendingRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r RecordSpendingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.By(func(interface{}) error {
			if !r.Amount.IsPositive() {
				return validation.NewError("validation_amount_positive", "Số tiền phải lớn hơn 0")
			}
			return nil
		})),
	)
}
