package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/domains/voucher/repository"
	"ecommerce-backend/internal/shared/apperror"
	"ecommerce-backend/internal/shared/utils"
	"ecommerce-backend/pkg/database"
)

// Options là các tham số không phải dependency
type Options struct {
	Location     *time.Location   // timezone xác định "hôm nay"
	ExportPrefix string           // prefix object key khi export
	Now          func() time.Time // nil = time.Now
}

type voucherService struct {
	repo       repository.VoucherRepository
	tx         database.Transactor
	customers  CustomerLookup
	rankings   RankingLookup
	dispatcher Dispatcher
	storage    FileStorage

	loc          *time.Location
	exportPrefix string
	now          func() time.Time
}

func NewVoucherService(
	repo repository.VoucherRepository,
	tx database.Transactor,
	customers CustomerLookup,
	rankings RankingLookup,
	dispatcher Dispatcher,
	storage FileStorage,
	opts Options,
) ServiceInterface {
	s := &voucherService{
		repo:         repo,
		tx:           tx,
		customers:    customers,
		rankings:     rankings,
		dispatcher:   dispatcher,
		storage:      storage,
		loc:          opts.Location,
		exportPrefix: opts.ExportPrefix,
		now:          opts.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.exportPrefix == "" {
		s.exportPrefix = "exports/vouchers"
	}
	return s
}

// today là ngày hiện tại theo timezone cấu hình
func (s *voucherService) today() time.Time {
	return model.DateOf(s.now().In(s.loc))
}

func (s *voucherService) findVoucher(ctx context.Context, id int64) (*model.Voucher, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, model.ErrVoucherNotFound.WithDetail("id", id)
	}
	return v, nil
}

// =====================================================
// CREATE
// =====================================================

// CreateVoucher tạo voucher và (với GROUP) các row DRAFT trong cùng transaction
//
// Business Logic:
// 1. ALL: code bắt buộc và chưa tồn tại
// 2. GROUP: mọi customer phải tồn tại, id trùng chỉ tạo một row
// 3. RANK: ranking phải tồn tại
func (s *voucherService) CreateVoucher(ctx context.Context, req model.CreateVoucherRequest) (*model.VoucherDetailResponse, error) {
	// 1. VALIDATE INPUT
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	startDate, endDate, err := model.ParseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, apperror.ErrInvalidInput.Wrap(err)
	}

	voucher := &model.Voucher{
		Name:              req.Name,
		Description:       req.Description,
		StartDate:         startDate,
		EndDate:           endDate,
		Active:            req.IsActive(),
		Discount:          req.Discount,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		VoucherType:       req.VoucherType,
	}

	// 2. RESOLVE TARGETING KEY
	var customerIDs []int64
	switch req.VoucherType {
	case model.TypeAll:
		exists, err := s.repo.CodeExists(ctx, req.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.ErrCodeAlreadyUsed.WithDetail("code", req.Code)
		}
		code := req.Code
		voucher.Code = &code

	case model.TypeRank:
		ranking, err := s.rankings.GetByID(ctx, *req.RankID)
		if err != nil {
			return nil, err
		}
		voucher.RankingID = &ranking.ID
		voucher.RankingName = ranking.Name

	case model.TypeGroup:
		customers, err := s.customers.FindCustomersByIDs(ctx, req.CustomerIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			customerIDs = append(customerIDs, c.ID)
		}
		sort.Slice(customerIDs, func(i, j int) bool { return customerIDs[i] < customerIDs[j] })
	}

	// 3. PERSIST voucher + issuance rows
	var issuances []model.VoucherCustomer
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.Create(ctx, tx, voucher); err != nil {
			return err
		}
		issuances = newIssuances(voucher.ID, customerIDs)
		return s.repo.CreateIssuances(ctx, tx, issuances)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("voucher_id", voucher.ID).
		Str("type", string(voucher.VoucherType)).
		Int("customers", len(issuances)).
		Msg("[VoucherService] Voucher created")

	res := model.ToVoucherDetailResponse(voucher, issuances)
	return &res, nil
}

func newIssuances(voucherID int64, customerIDs []int64) []model.VoucherCustomer {
	rows := make([]model.VoucherCustomer, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		rows = append(rows, model.NewVoucherCustomer(voucherID, customerID))
	}
	return rows
}

// =====================================================
// UPDATE
// =====================================================

// UpdateVoucher cập nhật thông tin chung. Với GROUP, danh sách customer chỉ được thêm:
//   - customer đã SENT mà không còn trong request -> Conflict
//   - customer mới -> row DRAFT mới
//   - customer DRAFT không còn trong request -> giữ nguyên
func (s *voucherService) UpdateVoucher(ctx context.Context, id int64, req model.UpdateVoucherRequest) (*model.VoucherDetailResponse, error) {
	voucher, err := s.findVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	// 1. VALIDATE INPUT theo loại hiện tại
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(voucher.VoucherType); err != nil {
		return nil, apperror.FromValidation(err)
	}
	if err := checkImmutable(voucher, req); err != nil {
		return nil, err
	}

	startDate, endDate, err := model.ParseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, apperror.ErrInvalidInput.Wrap(err)
	}

	voucher.Name = req.Name
	voucher.Description = req.Description
	voucher.StartDate = startDate
	voucher.EndDate = endDate
	voucher.Discount = req.Discount
	voucher.MinOrderAmount = req.MinOrderAmount
	voucher.MaxDiscountAmount = req.MaxDiscountAmount
	if req.Active != nil {
		voucher.Active = *req.Active
	}

	// 2. RANK: đổi ranking nếu có rank_id
	if voucher.VoucherType == model.TypeRank && req.RankID != nil {
		ranking, err := s.rankings.GetByID(ctx, *req.RankID)
		if err != nil {
			return nil, err
		}
		voucher.RankingID = &ranking.ID
		voucher.RankingName = ranking.Name
	}

	// 3. GROUP: diff danh sách customer
	existing, err := s.repo.FindIssuancesByVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	var added []model.VoucherCustomer
	if voucher.VoucherType == model.TypeGroup && req.CustomerIDs != nil {
		newIDs, err := diffCustomers(existing, req.CustomerIDs)
		if err != nil {
			return nil, err
		}
		if len(newIDs) > 0 {
			// đảm bảo customer mới tồn tại
			if _, err := s.customers.FindCustomersByIDs(ctx, newIDs); err != nil {
				return nil, err
			}
			added = newIssuances(voucher.ID, newIDs)
		}
	}

	// 4. PERSIST
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.Update(ctx, tx, voucher); err != nil {
			return err
		}
		return s.repo.CreateIssuances(ctx, tx, added)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("voucher_id", voucher.ID).
		Int("added_customers", len(added)).
		Msg("[VoucherService] Voucher updated")

	res := model.ToVoucherDetailResponse(voucher, append(existing, added...))
	return &res, nil
}

// checkImmutable: voucher_type và code gửi lên phải trùng giá trị hiện tại
func checkImmutable(v *model.Voucher, req model.UpdateVoucherRequest) error {
	if req.VoucherType != nil && *req.VoucherType != v.VoucherType {
		return model.ErrImmutableField.
			WithDetail("field", "voucher_type").
			WithDetail("current", v.VoucherType)
	}
	if req.Code != nil {
		requested := strings.TrimSpace(*req.Code)
		current := ""
		if v.Code != nil {
			current = *v.Code
		}
		if requested != current {
			return model.ErrImmutableField.WithDetail("field", "code")
		}
	}
	return nil
}

// diffCustomers trả về customer id mới (chưa có row) theo thứ tự tăng dần.
// Trả Conflict nếu request bỏ customer đã SENT.
func diffCustomers(existing []model.VoucherCustomer, requested []int64) ([]int64, error) {
	want := make(map[int64]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
	}

	have := make(map[int64]struct{}, len(existing))
	var revoked []int64
	for _, vc := range existing {
		have[vc.CustomerID] = struct{}{}
		if _, ok := want[vc.CustomerID]; !ok && vc.IsSent() {
			revoked = append(revoked, vc.CustomerID)
		}
	}
	if len(revoked) > 0 {
		return nil, model.ErrCannotRevokeSent.WithDetail("customer_ids", revoked)
	}

	var added []int64
	for id := range want {
		if _, ok := have[id]; !ok {
			added = append(added, id)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	return added, nil
}

// =====================================================
// STATUS / READ
// =====================================================

// ChangeStatus đảo cờ active
func (s *voucherService) ChangeStatus(ctx context.Context, id int64) (*model.VoucherResponse, error) {
	voucher, err := s.findVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	voucher.Active = !voucher.Active
	if err := s.repo.SetActive(ctx, nil, id, voucher.Active); err != nil {
		return nil, err
	}

	log.Info().Int64("voucher_id", id).Bool("active", voucher.Active).Msg("[VoucherService] Voucher status changed")

	res := model.ToVoucherResponse(voucher)
	return &res, nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, id int64) (*model.VoucherDetailResponse, error) {
	voucher, err := s.findVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	issuances, err := s.repo.FindIssuancesByVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	res := model.ToVoucherDetailResponse(voucher, issuances)
	return &res, nil
}

func (s *voucherService) SearchVouchers(ctx context.Context, req model.SearchVoucherRequest) (*model.VoucherListResult, error) {
	req.VoucherType = strings.ToUpper(strings.TrimSpace(req.VoucherType))
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	page, limit, offset := utils.NormalizePage(req.Page, req.Limit)
	filter := model.VoucherFilter{
		Name:   strings.TrimSpace(req.Name),
		Active: req.Active,
		Limit:  limit,
		Offset: offset,
	}
	if req.VoucherType != "" {
		t := model.VoucherType(req.VoucherType)
		filter.VoucherType = &t
	}
	if req.StartDate != "" {
		d, _ := time.Parse(model.DateLayout, req.StartDate)
		filter.StartFrom = &d
	}
	if req.EndDate != "" {
		d, _ := time.Parse(model.DateLayout, req.EndDate)
		filter.EndTo = &d
	}

	vouchers, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]model.VoucherResponse, 0, len(vouchers))
	for i := range vouchers {
		items = append(items, model.ToVoucherResponse(&vouchers[i]))
	}

	return &model.VoucherListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

// =====================================================
// CUSTOMER
// =====================================================

// GetAvailableVouchersForCustomer gộp:
//   - voucher đã phát cho customer, voucher active và hôm nay nằm trong window
//   - voucher ALL active và hôm nay nằm trong window
//
// Kết quả không trùng theo (voucher_id, code).
func (s *voucherService) GetAvailableVouchersForCustomer(ctx context.Context, customerID int64) ([]model.AvailableVoucherResponse, error) {
	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	today := s.today()

	issued, err := s.repo.FindIssuedToCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	global, err := s.repo.FindActiveAllTypeOn(ctx, today)
	if err != nil {
		return nil, err
	}

	type key struct {
		voucherID int64
		code      string
	}
	seen := make(map[key]struct{})
	result := make([]model.AvailableVoucherResponse, 0, len(issued)+len(global))

	add := func(v *model.Voucher, code string) {
		k := key{v.ID, code}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		result = append(result, model.ToAvailableVoucher(v, code))
	}

	for i := range issued {
		item := &issued[i]
		if item.Voucher.IsAvailableOn(today) {
			add(&item.Voucher, item.Issuance.Code)
		}
	}
	for i := range global {
		v := &global[i]
		if v.Code != nil && v.IsAvailableOn(today) {
			add(v, *v.Code)
		}
	}

	return result, nil
}

// DeactivateExpired tắt voucher đã hết hạn tính đến hôm nay
func (s *voucherService) DeactivateExpired(ctx context.Context) (int64, error) {
	today := s.today()
	count, err := s.repo.DeactivateExpired(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired: %w", err)
	}
	log.Info().Int64("count", count).Str("today", model.FormatDate(today)).Msg("[VoucherService] Expired vouchers deactivated")
	return count, nil
}
