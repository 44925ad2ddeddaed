package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	rankingModel "ecommerce-backend/internal/domains/ranking/model"
	userModel "ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/shared"
)

// ====== VOUCHER REPOSITORY (in-memory) ======

type fakeRepo struct {
	vouchers       map[int64]*model.Voucher
	issuances      []model.VoucherCustomer
	nextVoucherID  int64
	nextIssuanceID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{vouchers: map[int64]*model.Voucher{}}
}

func (f *fakeRepo) Create(_ context.Context, _ pgx.Tx, v *model.Voucher) error {
	if v.Code != nil {
		for _, existing := range f.vouchers {
			if existing.Code != nil && strings.EqualFold(*existing.Code, *v.Code) {
				return model.ErrCodeAlreadyUsed
			}
		}
	}
	f.nextVoucherID++
	v.ID = f.nextVoucherID
	cp := *v
	f.vouchers[v.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, _ pgx.Tx, v *model.Voucher) error {
	if _, ok := f.vouchers[v.ID]; !ok {
		return model.ErrVoucherNotFound
	}
	cp := *v
	f.vouchers[v.ID] = &cp
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Voucher, error) {
	v, ok := f.vouchers[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, v := range f.vouchers {
		if v.Code != nil && strings.EqualFold(*v.Code, code) {
			return true, nil
		}
	}
	for _, vc := range f.issuances {
		if strings.EqualFold(vc.Code, code) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) SetActive(_ context.Context, _ pgx.Tx, id int64, active bool) error {
	v, ok := f.vouchers[id]
	if !ok {
		return model.ErrVoucherNotFound
	}
	v.Active = active
	return nil
}

func (f *fakeRepo) Search(_ context.Context, filter model.VoucherFilter) ([]model.Voucher, int, error) {
	var matched []model.Voucher
	for _, v := range f.sorted() {
		if filter.Name != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.VoucherType != nil && v.VoucherType != *filter.VoucherType {
			continue
		}
		if filter.Active != nil && v.Active != *filter.Active {
			continue
		}
		if filter.StartFrom != nil && v.StartDate.Before(*filter.StartFrom) {
			continue
		}
		if filter.EndTo != nil && v.EndDate.After(*filter.EndTo) {
			continue
		}
		matched = append(matched, v)
	}

	total := len(matched)
	if filter.Offset >= total {
		return []model.Voucher{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (f *fakeRepo) FindActiveAllTypeOn(_ context.Context, day time.Time) ([]model.Voucher, error) {
	var out []model.Voucher
	for _, v := range f.sorted() {
		if v.VoucherType == model.TypeAll && v.IsAvailableOn(day) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeactivateExpired(_ context.Context, day time.Time) (int64, error) {
	var n int64
	for _, v := range f.vouchers {
		if v.Active && v.EndDate.Before(day) {
			v.Active = false
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateIssuances(_ context.Context, _ pgx.Tx, rows []model.VoucherCustomer) error {
	for i := range rows {
		for _, existing := range f.issuances {
			if existing.VoucherID == rows[i].VoucherID && existing.CustomerID == rows[i].CustomerID {
				return model.ErrAlreadyIssued
			}
		}
		f.nextIssuanceID++
		rows[i].ID = f.nextIssuanceID
		f.issuances = append(f.issuances, rows[i])
	}
	return nil
}

func (f *fakeRepo) FindIssuancesByVoucher(_ context.Context, voucherID int64) ([]model.VoucherCustomer, error) {
	var out []model.VoucherCustomer
	for _, vc := range f.issuances {
		if vc.VoucherID == voucherID {
			out = append(out, vc)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindIssuedToCustomer(_ context.Context, customerID int64) ([]model.IssuedVoucher, error) {
	var out []model.IssuedVoucher
	for _, vc := range f.issuances {
		if vc.CustomerID == customerID {
			out = append(out, model.IssuedVoucher{Issuance: vc, Voucher: *f.vouchers[vc.VoucherID]})
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkIssuanceSent(_ context.Context, _ pgx.Tx, id int64) error {
	for i := range f.issuances {
		if f.issuances[i].ID == id {
			if f.issuances[i].Status != model.StatusDraft {
				return model.ErrAlreadySent
			}
			f.issuances[i].Status = model.StatusSent
			return nil
		}
	}
	return model.ErrAlreadySent
}

func (f *fakeRepo) sorted() []model.Voucher {
	out := make([]model.Voucher, 0, len(f.vouchers))
	for _, v := range f.vouchers {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// seedVoucher thêm voucher trực tiếp, bỏ qua validate
func (f *fakeRepo) seedVoucher(v model.Voucher) int64 {
	f.nextVoucherID++
	v.ID = f.nextVoucherID
	f.vouchers[v.ID] = &v
	return v.ID
}

func (f *fakeRepo) seedIssuance(voucherID, customerID int64, code string, status model.IssuanceStatus) {
	f.nextIssuanceID++
	f.issuances = append(f.issuances, model.VoucherCustomer{
		ID: f.nextIssuanceID, VoucherID: voucherID, CustomerID: customerID, Code: code, Status: status,
	})
}

func (f *fakeRepo) statusOf(voucherID, customerID int64) model.IssuanceStatus {
	for _, vc := range f.issuances {
		if vc.VoucherID == voucherID && vc.CustomerID == customerID {
			return vc.Status
		}
	}
	return ""
}

// ====== CUSTOMERS / RANKINGS ======

type fakeCustomers struct {
	users map[int64]userModel.User
}

func newFakeCustomers(ids ...int64) *fakeCustomers {
	f := &fakeCustomers{users: map[int64]userModel.User{}}
	for _, id := range ids {
		f.add(id, nil)
	}
	return f
}

func (f *fakeCustomers) add(id int64, rankingID *int64) {
	f.users[id] = userModel.User{
		ID:       id,
		Email:    fmt.Sprintf("customer%d@shop.vn", id),
		FullName: fmt.Sprintf("Khách %d", id),
		Active:   true,
		Kind:     userModel.KindCustomer,
		Customer: &userModel.CustomerProfile{RankingID: rankingID},
	}
}

func (f *fakeCustomers) GetCustomer(_ context.Context, id int64) (*userModel.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userModel.ErrCustomerNotFound
	}
	return &u, nil
}

func (f *fakeCustomers) FindCustomersByIDs(_ context.Context, ids []int64) ([]userModel.User, error) {
	seen := map[int64]bool{}
	var out []userModel.User
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		u, ok := f.users[id]
		if !ok {
			return nil, userModel.ErrCustomerNotFound.WithDetail("ids", []int64{id})
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeCustomers) ListCustomersByRanking(_ context.Context, rankingID int64) ([]userModel.User, error) {
	var out []userModel.User
	for _, u := range f.users {
		if u.Customer.RankingID != nil && *u.Customer.RankingID == rankingID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeRankings map[int64]string

func (f fakeRankings) GetByID(_ context.Context, id int64) (*rankingModel.Ranking, error) {
	name, ok := f[id]
	if !ok {
		return nil, rankingModel.ErrRankingNotFound
	}
	return &rankingModel.Ranking{ID: id, Name: name}, nil
}

// ====== DISPATCHER / STORAGE ======

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) DispatchVoucherEmail(ctx context.Context, payload shared.VoucherEmailPayload) error {
	return m.Called(ctx, payload).Error(0)
}

type fakeStorage struct {
	key         string
	contentType string
	data        []byte
}

func (f *fakeStorage) Upload(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	f.key = key
	f.contentType = contentType
	f.data = buf.Bytes()
	return "http://minio.local/ecommerce/" + key, nil
}
