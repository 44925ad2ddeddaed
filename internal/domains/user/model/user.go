package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind phân biệt loại user. Mỗi User chỉ mang đúng profile tương ứng với Kind.
type Kind string

const (
	KindCustomer Kind = "CUSTOMER"
	KindStaff    Kind = "STAFF"
)

// Staff position, cũng là role trong JWT
const (
	PositionAdmin = "ADMIN"
	PositionStaff = "STAFF"
)

// RoleCustomer là role JWT của customer
const RoleCustomer = "CUSTOMER"

type CustomerProfile struct {
	Phone         string          `json:"phone,omitempty"`
	TotalSpending decimal.Decimal `json:"total_spending"`
	RankingID     *int64          `json:"ranking_id,omitempty"`
	RankingName   string          `json:"ranking_name,omitempty"`
}

type StaffProfile struct {
	Position string `json:"position"`
}

// User giữ các field chung một lần, phần riêng nằm trong Customer hoặc Staff
type User struct {
	ID           int64            `json:"id"`
	Email        string           `json:"email"`
	FullName     string           `json:"full_name"`
	PasswordHash string           `json:"-"`
	Active       bool             `json:"active"`
	Kind         Kind             `json:"kind"`
	Customer     *CustomerProfile `json:"customer,omitempty"`
	Staff        *StaffProfile    `json:"staff,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (u *User) IsCustomer() bool {
	return u.Kind == KindCustomer && u.Customer != nil
}

// Role trả về role đưa vào JWT
func (u *User) Role() string {
	if u.Kind == KindStaff && u.Staff != nil {
		return u.Staff.Position
	}
	return RoleCustomer
}

// CheckVariant đảm bảo profile khớp với Kind
func (u *User) CheckVariant() error {
	switch u.Kind {
	case KindCustomer:
		if u.Customer == nil || u.Staff != nil {
			return fmt.Errorf("user %d: customer must carry only a customer profile", u.ID)
		}
	case KindStaff:
		if u.Staff == nil || u.Customer != nil {
			return fmt.Errorf("user %d: staff must carry only a staff profile", u.ID)
		}
	default:
		return fmt.Errorf("user %d: unknown kind %q", u.ID, u.Kind)
	}
	return nil
}
