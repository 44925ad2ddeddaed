package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	userModel "ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/domains/voucher/model"
	"ecommerce-backend/internal/shared"
)

// SendVoucherToCustomers gửi voucher cho mọi row DRAFT
//
// Business Logic:
// 1. Voucher phải active
// 2. RANK: tạo row DRAFT cho customer hiện thuộc hạng mà chưa có row
// 3. Mỗi row DRAFT: enqueue email -> chuyển SENT. Row SENT bỏ qua.
// 4. Lỗi đầu tiên dừng cả batch; các row đã SENT giữ nguyên (at-least-once)
func (s *voucherService) SendVoucherToCustomers(ctx context.Context, id int64) (*model.SendResult, error) {
	voucher, err := s.findVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	if !voucher.Active {
		return nil, model.ErrVoucherInactive.WithDetail("id", id)
	}

	// 1. RANK: audience là customer thuộc hạng tại thời điểm gửi
	if voucher.VoucherType == model.TypeRank {
		if err := s.materializeRankAudience(ctx, voucher); err != nil {
			return nil, err
		}
	}

	// 2. LOAD ISSUANCES
	issuances, err := s.repo.FindIssuancesByVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.SendResult{VoucherID: id}
	var drafts []model.VoucherCustomer
	for _, vc := range issuances {
		if vc.IsSent() {
			result.Skipped++
			continue
		}
		drafts = append(drafts, vc)
	}
	if len(drafts) == 0 {
		return result, nil
	}

	recipients, err := s.recipients(ctx, drafts)
	if err != nil {
		return nil, err
	}

	// 3. DISPATCH + MARK SENT, dừng ở lỗi đầu tiên
	for i := range drafts {
		vc := &drafts[i]
		customer := recipients[vc.CustomerID]

		if err := s.dispatcher.DispatchVoucherEmail(ctx, buildEmailPayload(voucher, vc, customer)); err != nil {
			log.Error().Err(err).
				Int64("voucher_id", id).
				Int64("customer_id", vc.CustomerID).
				Int("sent", result.Sent).
				Msg("[VoucherService] Dispatch failed, aborting batch")
			return nil, fmt.Errorf("dispatch voucher %d to customer %d: %w", id, vc.CustomerID, err)
		}

		if err := vc.MarkSent(); err != nil {
			return nil, err
		}
		if err := s.repo.MarkIssuanceSent(ctx, nil, vc.ID); err != nil {
			return nil, fmt.Errorf("mark voucher customer %d sent: %w", vc.ID, err)
		}
		result.Sent++
	}

	log.Info().
		Int64("voucher_id", id).
		Int("sent", result.Sent).
		Int("skipped", result.Skipped).
		Msg("[VoucherService] Voucher sent")

	return result, nil
}

// materializeRankAudience tạo row DRAFT cho customer thuộc ranking chưa được phát
func (s *voucherService) materializeRankAudience(ctx context.Context, voucher *model.Voucher) error {
	if voucher.RankingID == nil {
		return model.ErrMissingRanking.WithDetail("id", voucher.ID)
	}

	audience, err := s.customers.ListCustomersByRanking(ctx, *voucher.RankingID)
	if err != nil {
		return err
	}
	existing, err := s.repo.FindIssuancesByVoucher(ctx, voucher.ID)
	if err != nil {
		return err
	}

	have := make(map[int64]struct{}, len(existing))
	for _, vc := range existing {
		have[vc.CustomerID] = struct{}{}
	}

	var missing []int64
	for _, c := range audience {
		if _, ok := have[c.ID]; !ok {
			missing = append(missing, c.ID)
			have[c.ID] = struct{}{}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := s.repo.CreateIssuances(ctx, nil, newIssuances(voucher.ID, missing)); err != nil {
		return err
	}
	log.Info().
		Int64("voucher_id", voucher.ID).
		Int64("ranking_id", *voucher.RankingID).
		Int("customers", len(missing)).
		Msg("[VoucherService] Rank audience materialized")
	return nil
}

func (s *voucherService) recipients(ctx context.Context, drafts []model.VoucherCustomer) (map[int64]userModel.User, error) {
	ids := make([]int64, 0, len(drafts))
	for _, vc := range drafts {
		ids = append(ids, vc.CustomerID)
	}
	customers, err := s.customers.FindCustomersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]userModel.User, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	return byID, nil
}

func buildEmailPayload(v *model.Voucher, vc *model.VoucherCustomer, customer userModel.User) shared.VoucherEmailPayload {
	return shared.VoucherEmailPayload{
		VoucherID:         v.ID,
		VoucherCustomerID: vc.ID,
		Email:             customer.Email,
		CustomerName:      customer.FullName,
		VoucherName:       v.Name,
		Description:       v.Description,
		Code:              vc.Code,
		Discount:          v.Discount.String(),
		MinOrderAmount:    v.MinOrderAmount.String(),
		MaxDiscountAmount: v.MaxDiscountAmount.String(),
		StartDate:         model.FormatDate(v.StartDate),
		EndDate:           model.FormatDate(v.EndDate),
	}
}
