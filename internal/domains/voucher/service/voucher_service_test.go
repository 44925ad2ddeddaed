package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/shared"
	"ecommerce-backend/internal/shared/apperror"
	"ecommerce-backend/pkg/database"
)

var ict = time.FixedZone("ICT", 7*3600)

type testEnv struct {
	repo       *fakeRepo
	customers  *fakeCustomers
	dispatcher *mockDispatcher
	storage    *fakeStorage
	now        time.Time
	svc        ServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:       newFakeRepo(),
		customers:  newFakeCustomers(1, 2, 3),
		dispatcher: &mockDispatcher{},
		storage:    &fakeStorage{},
		now:        time.Date(2024, 6, 15, 10, 0, 0, 0, ict),
	}
	env.svc = NewVoucherService(
		env.repo,
		database.NoopTransactor{},
		env.customers,
		fakeRankings{1: "S-NEW", 4: "S-PLATINUM"},
		env.dispatcher,
		env.storage,
		Options{
			Location:     ict,
			ExportPrefix: "exports/vouchers",
			Now:          func() time.Time { return env.now },
		},
	)
	return env
}

func date(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func baseRequest(t model.VoucherType) model.CreateVoucherRequest {
	return model.CreateVoucherRequest{
		Name:              "Ưu đãi hè",
		Description:       "Giảm giá mùa hè",
		StartDate:         "2024-06-01",
		EndDate:           "2024-06-30",
		Active:            boolPtr(true),
		Discount:          decimal.NewFromInt(10),
		MinOrderAmount:    decimal.NewFromInt(100_000),
		MaxDiscountAmount: decimal.NewFromInt(50_000),
		VoucherType:       t,
	}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateVoucher_TypeRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *model.CreateVoucherRequest)
	}{
		{"ALL without code", func(r *model.CreateVoucherRequest) { r.VoucherType = model.TypeAll }},
		{"ALL with blank code", func(r *model.CreateVoucherRequest) { r.VoucherType = model.TypeAll; r.Code = "   " }},
		{"GROUP without customers", func(r *model.CreateVoucherRequest) { r.VoucherType = model.TypeGroup }},
		{"RANK without rank id", func(r *model.CreateVoucherRequest) { r.VoucherType = model.TypeRank }},
		{"ALL mixed with customers", func(r *model.CreateVoucherRequest) {
			r.VoucherType = model.TypeAll
			r.Code = "MIXED1"
			r.CustomerIDs = []int64{1}
		}},
		{"GROUP mixed with rank", func(r *model.CreateVoucherRequest) {
			r.VoucherType = model.TypeGroup
			r.CustomerIDs = []int64{1}
			r.RankID = int64Ptr(1)
		}},
		{"RANK mixed with code", func(r *model.CreateVoucherRequest) {
			r.VoucherType = model.TypeRank
			r.RankID = int64Ptr(1)
			r.Code = "RANKCODE"
		}},
		{"end before start", func(r *model.CreateVoucherRequest) {
			r.VoucherType = model.TypeAll
			r.Code = "WINDOW1"
			r.EndDate = "2024-05-31"
		}},
		{"zero discount", func(r *model.CreateVoucherRequest) {
			r.VoucherType = model.TypeAll
			r.Code = "ZERO1"
			r.Discount = decimal.Zero
		}},
		{"unknown type", func(r *model.CreateVoucherRequest) { r.VoucherType = "VIP" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			req := baseRequest("")
			tt.mutate(&req)

			_, err := env.svc.CreateVoucher(context.Background(), req)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err), "got %v", err)
			assert.Empty(t, env.repo.vouchers)
		})
	}
}

func TestCreateVoucher_AllCodeConflict(t *testing.T) {
	env := newTestEnv(t)
	req := baseRequest(model.TypeAll)
	req.Code = "SUMMER10"

	res, err := env.svc.CreateVoucher(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res.Code)
	assert.Equal(t, "SUMMER10", *res.Code)
	assert.True(t, res.Active)
	assert.Equal(t, "2024-06-01", res.StartDate)
	assert.Empty(t, res.Customers)

	_, err = env.svc.CreateVoucher(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.ErrorIs(t, err, model.ErrCodeAlreadyUsed)
	assert.Len(t, env.repo.vouchers, 1)
}

func TestCreateVoucher_GroupCreatesDraftRows(t *testing.T) {
	env := newTestEnv(t)
	req := baseRequest(model.TypeGroup)
	req.CustomerIDs = []int64{3, 1, 2, 1}

	res, err := env.svc.CreateVoucher(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, res.Code)

	rows, _ := env.repo.FindIssuancesByVoucher(context.Background(), res.ID)
	require.Len(t, rows, 3)

	codes := map[string]bool{}
	for _, row := range rows {
		assert.Equal(t, model.StatusDraft, row.Status)
		assert.True(t, strings.HasPrefix(row.Code, "VC1"), row.Code)
		assert.Len(t, row.Code, len("VC1")+8)
		assert.Equal(t, strings.ToUpper(row.Code), row.Code)
		codes[row.Code] = true
	}
	assert.Len(t, codes, 3)
	assert.Len(t, res.Customers, 3)
}

func TestCreateVoucher_GroupUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	req := baseRequest(model.TypeGroup)
	req.CustomerIDs = []int64{1, 99}

	_, err := env.svc.CreateVoucher(context.Background(), req)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, env.repo.vouchers)
	assert.Empty(t, env.repo.issuances)
}

func TestCreateVoucher_Rank(t *testing.T) {
	env := newTestEnv(t)

	req := baseRequest(model.TypeRank)
	req.RankID = int64Ptr(4)
	res, err := env.svc.CreateVoucher(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *res.RankingID)
	assert.Equal(t, "S-PLATINUM", res.RankingName)
	assert.Empty(t, env.repo.issuances)

	req.RankID = int64Ptr(42)
	_, err = env.svc.CreateVoucher(context.Background(), req)
	assert.True(t, apperror.IsNotFound(err))
}

// =====================================================
// UPDATE / STATUS
// =====================================================

func TestChangeStatus_TwiceRestoresOriginal(t *testing.T) {
	env := newTestEnv(t)
	id := env.repo.seedVoucher(model.Voucher{Name: "A", VoucherType: model.TypeAll, Active: true})

	res, err := env.svc.ChangeStatus(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, res.Active)

	res, err = env.svc.ChangeStatus(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, env.repo.vouchers[id].Active)

	_, err = env.svc.ChangeStatus(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrVoucherNotFound)
}

func groupUpdateRequest(customerIDs []int64) model.UpdateVoucherRequest {
	return model.UpdateVoucherRequest{
		Name:              "Ưu đãi nhóm",
		StartDate:         "2024-06-01",
		EndDate:           "2024-06-30",
		Discount:          decimal.NewFromInt(20),
		MinOrderAmount:    decimal.Zero,
		MaxDiscountAmount: decimal.Zero,
		CustomerIDs:       customerIDs,
	}
}

func seedGroup(env *testEnv) int64 {
	id := env.repo.seedVoucher(model.Voucher{
		Name: "Nhóm", VoucherType: model.TypeGroup, Active: true,
		StartDate: date("2024-06-01"), EndDate: date("2024-06-30"),
		Discount: decimal.NewFromInt(10),
	})
	env.repo.seedIssuance(id, 1, "VC1SENT0001", model.StatusSent)
	env.repo.seedIssuance(id, 2, "VC1DRAFT002", model.StatusDraft)
	return id
}

func TestUpdateVoucher_GroupDiff(t *testing.T) {
	t.Run("removing SENT customer conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		id := seedGroup(env)

		_, err := env.svc.UpdateVoucher(context.Background(), id, groupUpdateRequest([]int64{2, 3}))
		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
		assert.ErrorIs(t, err, model.ErrCannotRevokeSent)
		assert.Equal(t, "Nhóm", env.repo.vouchers[id].Name)
		assert.Len(t, env.repo.issuances, 2)
	})

	t.Run("removing DRAFT customer is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		id := seedGroup(env)

		res, err := env.svc.UpdateVoucher(context.Background(), id, groupUpdateRequest([]int64{1}))
		require.NoError(t, err)
		assert.Equal(t, "Ưu đãi nhóm", res.Name)
		assert.Equal(t, model.StatusDraft, env.repo.statusOf(id, 2))
		assert.Len(t, env.repo.issuances, 2)
	})

	t.Run("new customer gets DRAFT row, existing untouched", func(t *testing.T) {
		env := newTestEnv(t)
		id := seedGroup(env)

		res, err := env.svc.UpdateVoucher(context.Background(), id, groupUpdateRequest([]int64{1, 2, 3}))
		require.NoError(t, err)
		require.Len(t, env.repo.issuances, 3)
		assert.Equal(t, model.StatusSent, env.repo.statusOf(id, 1))
		assert.Equal(t, "VC1DRAFT002", env.repo.issuances[1].Code)
		assert.Equal(t, model.StatusDraft, env.repo.statusOf(id, 3))
		assert.Len(t, res.Customers, 3)
	})

	t.Run("unknown new customer", func(t *testing.T) {
		env := newTestEnv(t)
		id := seedGroup(env)

		_, err := env.svc.UpdateVoucher(context.Background(), id, groupUpdateRequest([]int64{1, 2, 77}))
		assert.True(t, apperror.IsNotFound(err))
		assert.Len(t, env.repo.issuances, 2)
	})

	t.Run("nil list leaves issuance alone", func(t *testing.T) {
		env := newTestEnv(t)
		id := seedGroup(env)

		_, err := env.svc.UpdateVoucher(context.Background(), id, groupUpdateRequest(nil))
		require.NoError(t, err)
		assert.Len(t, env.repo.issuances, 2)
	})
}

func TestUpdateVoucher_ImmutableFields(t *testing.T) {
	env := newTestEnv(t)
	code := "SUMMER10"
	id := env.repo.seedVoucher(model.Voucher{Name: "A", Code: &code, VoucherType: model.TypeAll, Active: true})

	req := groupUpdateRequest(nil)
	rank := model.TypeRank
	req.VoucherType = &rank
	_, err := env.svc.UpdateVoucher(context.Background(), id, req)
	assert.ErrorIs(t, err, model.ErrImmutableField)

	req = groupUpdateRequest(nil)
	other := "WINTER10"
	req.Code = &other
	_, err = env.svc.UpdateVoucher(context.Background(), id, req)
	assert.ErrorIs(t, err, model.ErrImmutableField)

	req = groupUpdateRequest(nil)
	req.Code = &code
	req.Active = boolPtr(false)
	res, err := env.svc.UpdateVoucher(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", *res.Code)
	assert.False(t, res.Active)

	// customer_ids không hợp lệ với voucher ALL
	_, err = env.svc.UpdateVoucher(context.Background(), id, groupUpdateRequest([]int64{1}))
	assert.True(t, apperror.IsValidation(err))

	_, err = env.svc.UpdateVoucher(context.Background(), 404, groupUpdateRequest(nil))
	assert.ErrorIs(t, err, model.ErrVoucherNotFound)
}

func TestUpdateVoucher_RankChangesRanking(t *testing.T) {
	env := newTestEnv(t)
	id := env.repo.seedVoucher(model.Voucher{Name: "R", VoucherType: model.TypeRank, RankingID: int64Ptr(1), Active: true})

	req := groupUpdateRequest(nil)
	req.RankID = int64Ptr(4)
	res, err := env.svc.UpdateVoucher(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *res.RankingID)

	req.RankID = int64Ptr(9)
	_, err = env.svc.UpdateVoucher(context.Background(), id, req)
	assert.True(t, apperror.IsNotFound(err))
}

// =====================================================
// AVAILABLE
// =====================================================

func TestGetAvailableVouchersForCustomer(t *testing.T) {
	env := newTestEnv(t)
	summer := "SUMMER10"
	old := "OLD5"

	june := env.repo.seedVoucher(model.Voucher{Name: "June rank", VoucherType: model.TypeRank, Active: true,
		StartDate: date("2024-06-01"), EndDate: date("2024-06-30")})
	july := env.repo.seedVoucher(model.Voucher{Name: "July rank", VoucherType: model.TypeRank, Active: true,
		StartDate: date("2024-07-01"), EndDate: date("2024-07-31")})
	all := env.repo.seedVoucher(model.Voucher{Name: "Summer", Code: &summer, VoucherType: model.TypeAll, Active: true,
		StartDate: date("2024-06-10"), EndDate: date("2024-06-20")})
	env.repo.seedVoucher(model.Voucher{Name: "Inactive all", Code: &old, VoucherType: model.TypeAll, Active: false,
		StartDate: date("2024-06-01"), EndDate: date("2024-06-30")})
	inactiveGroup := env.repo.seedVoucher(model.Voucher{Name: "Off group", VoucherType: model.TypeGroup, Active: false,
		StartDate: date("2024-06-01"), EndDate: date("2024-06-30")})

	env.repo.seedIssuance(june, 1, "VC1JUNE0001", model.StatusSent)
	env.repo.seedIssuance(july, 1, "VC2JULY0001", model.StatusSent)
	env.repo.seedIssuance(inactiveGroup, 1, "VC5OFF00001", model.StatusDraft)
	env.repo.seedIssuance(june, 2, "VC1JUNE0002", model.StatusSent)

	got, err := env.svc.GetAvailableVouchersForCustomer(context.Background(), 1)
	require.NoError(t, err)

	byCode := map[string]model.AvailableVoucherResponse{}
	for _, v := range got {
		byCode[v.Code] = v
	}
	assert.Len(t, got, 2)
	assert.Equal(t, june, byCode["VC1JUNE0001"].VoucherID)
	assert.Equal(t, all, byCode["SUMMER10"].VoucherID)
	assert.NotContains(t, byCode, "VC2JULY0001")
	assert.NotContains(t, byCode, "OLD5")
	assert.NotContains(t, byCode, "VC1JUNE0002")

	_, err = env.svc.GetAvailableVouchersForCustomer(context.Background(), 99)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetAvailableVouchersForCustomer_UsesConfiguredTimezone(t *testing.T) {
	env := newTestEnv(t)
	code := "LASTDAY"
	env.repo.seedVoucher(model.Voucher{Name: "Ends 15th", Code: &code, VoucherType: model.TypeAll, Active: true,
		StartDate: date("2024-06-01"), EndDate: date("2024-06-15")})

	// 18:00 UTC ngày 15 là 01:00 ngày 16 giờ Việt Nam
	env.now = time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	got, err := env.svc.GetAvailableVouchersForCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	env.now = time.Date(2024, 6, 15, 16, 0, 0, 0, time.UTC)
	got, err = env.svc.GetAvailableVouchersForCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// =====================================================
// SEND
// =====================================================

func TestSendVoucher_InactiveIsIllegalState(t *testing.T) {
	env := newTestEnv(t)
	id := env.repo.seedVoucher(model.Voucher{Name: "Off", VoucherType: model.TypeGroup, Active: false})
	env.repo.seedIssuance(id, 1, "VC1OFF", model.StatusDraft)

	_, err := env.svc.SendVoucherToCustomers(context.Background(), id)
	assert.True(t, apperror.IsIllegalState(err))
	assert.ErrorIs(t, err, model.ErrVoucherInactive)
	env.dispatcher.AssertNotCalled(t, "DispatchVoucherEmail", mock.Anything, mock.Anything)
	assert.Equal(t, model.StatusDraft, env.repo.statusOf(id, 1))

	_, err = env.svc.SendVoucherToCustomers(context.Background(), 404)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSendVoucher_SendsDraftsAndSkipsSent(t *testing.T) {
	env := newTestEnv(t)
	id := seedGroup(env)
	env.repo.seedIssuance(id, 3, "VC1DRAFT003", model.StatusDraft)

	env.dispatcher.On("DispatchVoucherEmail", mock.Anything, mock.MatchedBy(func(p shared.VoucherEmailPayload) bool {
		return p.VoucherID == id && p.Discount == "10" && p.StartDate == "2024-06-01"
	})).Return(nil)

	res, err := env.svc.SendVoucherToCustomers(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Skipped)
	for _, customerID := range []int64{1, 2, 3} {
		assert.Equal(t, model.StatusSent, env.repo.statusOf(id, customerID))
	}
	env.dispatcher.AssertNumberOfCalls(t, "DispatchVoucherEmail", 2)
	env.dispatcher.AssertCalled(t, "DispatchVoucherEmail", mock.Anything, mock.MatchedBy(func(p shared.VoucherEmailPayload) bool {
		return p.Email == "customer3@shop.vn" && p.Code == "VC1DRAFT003"
	}))

	// gửi lại không gửi trùng
	res, err = env.svc.SendVoucherToCustomers(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 3, res.Skipped)
	env.dispatcher.AssertNumberOfCalls(t, "DispatchVoucherEmail", 2)
}

func TestSendVoucher_FirstFailureAbortsBatch(t *testing.T) {
	env := newTestEnv(t)
	id := env.repo.seedVoucher(model.Voucher{Name: "Batch", VoucherType: model.TypeGroup, Active: true})
	env.repo.seedIssuance(id, 1, "VC1A", model.StatusDraft)
	env.repo.seedIssuance(id, 2, "VC1B", model.StatusDraft)
	env.repo.seedIssuance(id, 3, "VC1C", model.StatusDraft)

	env.dispatcher.On("DispatchVoucherEmail", mock.Anything, mock.MatchedBy(func(p shared.VoucherEmailPayload) bool {
		return p.Code == "VC1B"
	})).Return(errors.New("redis unavailable"))
	env.dispatcher.On("DispatchVoucherEmail", mock.Anything, mock.Anything).Return(nil)

	_, err := env.svc.SendVoucherToCustomers(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis unavailable")

	assert.Equal(t, model.StatusSent, env.repo.statusOf(id, 1))
	assert.Equal(t, model.StatusDraft, env.repo.statusOf(id, 2))
	assert.Equal(t, model.StatusDraft, env.repo.statusOf(id, 3))
	env.dispatcher.AssertNumberOfCalls(t, "DispatchVoucherEmail", 2)
}

func TestSendVoucher_RankMaterializesAudience(t *testing.T) {
	env := newTestEnv(t)
	env.customers.add(5, int64Ptr(4))
	env.customers.add(6, int64Ptr(4))
	env.customers.add(7, int64Ptr(1))

	id := env.repo.seedVoucher(model.Voucher{Name: "Platinum", VoucherType: model.TypeRank, RankingID: int64Ptr(4), Active: true})
	env.repo.seedIssuance(id, 5, "VC1SENT5", model.StatusSent)

	env.dispatcher.On("DispatchVoucherEmail", mock.Anything, mock.Anything).Return(nil)

	res, err := env.svc.SendVoucherToCustomers(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, model.StatusSent, env.repo.statusOf(id, 6))
	assert.Equal(t, model.IssuanceStatus(""), env.repo.statusOf(id, 7))
}

func TestSendVoucher_RankWithoutRanking(t *testing.T) {
	env := newTestEnv(t)
	id := env.repo.seedVoucher(model.Voucher{Name: "Broken", VoucherType: model.TypeRank, Active: true})

	_, err := env.svc.SendVoucherToCustomers(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrMissingRanking)
}

// =====================================================
// SEARCH / EXPORT / EXPIRE
// =====================================================

func TestSearchVouchers(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 12; i++ {
		env.repo.seedVoucher(model.Voucher{Name: "Sale tháng 6", VoucherType: model.TypeGroup, Active: i%2 == 0,
			StartDate: date("2024-06-01"), EndDate: date("2024-06-30")})
	}
	env.repo.seedVoucher(model.Voucher{Name: "Black Friday", VoucherType: model.TypeAll, Active: true,
		StartDate: date("2024-11-20"), EndDate: date("2024-11-30")})

	res, err := env.svc.SearchVouchers(context.Background(), model.SearchVoucherRequest{Name: "sale", Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Items, 5)

	_, err = env.svc.SearchVouchers(context.Background(), model.SearchVoucherRequest{VoucherType: "vip"})
	assert.True(t, apperror.IsValidation(err))

	res, err = env.svc.SearchVouchers(context.Background(), model.SearchVoucherRequest{VoucherType: "all", StartDate: "2024-11-01"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Black Friday", res.Items[0].Name)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.Limit)

	res, err = env.svc.SearchVouchers(context.Background(), model.SearchVoucherRequest{Active: boolPtr(false), EndDate: "2024-06-30"})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)
}

func TestExportIssuance(t *testing.T) {
	env := newTestEnv(t)
	id := seedGroup(env)

	res, err := env.svc.ExportIssuance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "exports/vouchers/1/20240615-100000.xlsx", res.ObjectKey)
	assert.Equal(t, exportContentType, env.storage.contentType)
	assert.Contains(t, res.URL, res.ObjectKey)

	f, err := excelize.OpenReader(bytes.NewReader(env.storage.data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Issuance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Customer ID", "Customer Name", "Email", "Code", "Status"}, rows[0])
	assert.Equal(t, []string{"1", "1", "Khách 1", "customer1@shop.vn", "VC1SENT0001", "SENT"}, rows[1])
	assert.Equal(t, "DRAFT", rows[2][5])

	_, err = env.svc.ExportIssuance(context.Background(), 404)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeactivateExpired(t *testing.T) {
	env := newTestEnv(t)
	expired := env.repo.seedVoucher(model.Voucher{Name: "May", Active: true, StartDate: date("2024-05-01"), EndDate: date("2024-05-31")})
	lastDay := env.repo.seedVoucher(model.Voucher{Name: "Today", Active: true, StartDate: date("2024-06-01"), EndDate: date("2024-06-15")})

	n, err := env.svc.DeactivateExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.False(t, env.repo.vouchers[expired].Active)
	assert.True(t, env.repo.vouchers[lastDay].Active)
}
