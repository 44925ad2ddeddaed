package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoleAndVariant(t *testing.T) {
	customer := &User{ID: 1, Kind: KindCustomer, Customer: &CustomerProfile{TotalSpending: decimal.NewFromInt(5)}}
	admin := &User{ID: 2, Kind: KindStaff, Staff: &StaffProfile{Position: PositionAdmin}}
	broken := &User{ID: 3, Kind: KindStaff, Customer: &CustomerProfile{}}

	assert.Equal(t, RoleCustomer, customer.Role())
	assert.Equal(t, PositionAdmin, admin.Role())
	assert.True(t, customer.IsCustomer())
	assert.False(t, admin.IsCustomer())

	assert.NoError(t, customer.CheckVariant())
	assert.NoError(t, admin.CheckVariant())
	assert.Error(t, broken.CheckVariant())
	assert.Error(t, (&User{Kind: "GUEST"}).CheckVariant())
}

func TestToUserResponse(t *testing.T) {
	res := ToUserResponse(&User{
		ID: 1, Email: "c@shop.vn", Kind: KindCustomer,
		Customer: &CustomerProfile{TotalSpending: decimal.NewFromInt(3_000_000), RankingName: "S-SILVER"},
	})
	assert.Equal(t, "S-SILVER", res.RankingName)
	assert.True(t, res.TotalSpending.Equal(decimal.NewFromInt(3_000_000)))

	staff := ToUserResponse(&User{ID: 2, Kind: KindStaff, Staff: &StaffProfile{Position: PositionStaff}})
	assert.Nil(t, staff.TotalSpending)
	assert.Equal(t, PositionStaff, staff.Role)
}

func TestRecordSpendingRequestValidate(t *testing.T) {
	assert.NoError(t, RecordSpendingRequest{Amount: decimal.NewFromInt(1)}.Validate())
	assert.Error(t, RecordSpendingRequest{Amount: decimal.Zero}.Validate())
	assert.Error(t, RecordSpendingRequest{Amount: decimal.NewFromInt(-3)}.Validate())
}
