package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/domains/promotion/model"
	"ecommerce-backend/internal/domains/promotion/repository"
	"ecommerce-backend/internal/shared/apperror"
	"ecommerce-backend/internal/shared/utils"
	"ecommerce-backend/pkg/database"
)

type Options struct {
	PriorityOrder model.PriorityOrder
	Location      *time.Location
	Now           func() time.Time
}

type promotionService struct {
	repo       repository.PromotionRepository
	tx         database.Transactor
	catalog    CatalogLookup
	calculator *DiscountCalculator

	order model.PriorityOrder
	loc   *time.Location
	now   func() time.Time
}

func NewPromotionService(
	repo repository.PromotionRepository,
	tx database.Transactor,
	catalog CatalogLookup,
	opts Options,
) ServiceInterface {
	s := &promotionService{
		repo:       repo,
		tx:         tx,
		catalog:    catalog,
		calculator: NewDiscountCalculator(),
		order:      opts.PriorityOrder,
		loc:        opts.Location,
		now:        opts.Now,
	}
	if s.order == "" {
		s.order = model.PriorityAsc
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *promotionService) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *promotionService) findPromotion(ctx context.Context, id int64) (*model.Promotion, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrPromotionNotFound.WithDetail("id", id)
	}
	return p, nil
}

// prepare validate request và kiểm tra entity catalog mà từng target trỏ tới
func (s *promotionService) prepare(ctx context.Context, req *model.PromotionRequest) (time.Time, time.Time, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.PromotionType = model.PromotionType(strings.ToUpper(strings.TrimSpace(string(req.PromotionType))))
	if err := req.Validate(); err != nil {
		return time.Time{}, time.Time{}, apperror.FromValidation(err)
	}

	start, end, err := req.Window()
	if err != nil {
		return time.Time{}, time.Time{}, apperror.ErrInvalidInput.Wrap(err)
	}

	for _, t := range model.ToPromotionTargets(req.Targets, 0) {
		kind, id := t.Kind()
		if err := s.catalog.EnsureExists(ctx, kind, id); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

// =====================================================
// CREATE / UPDATE
// =====================================================

// CreatePromotion insert promotion và targets trong cùng transaction
func (s *promotionService) CreatePromotion(ctx context.Context, req model.PromotionRequest) (*model.PromotionResponse, error) {
	start, end, err := s.prepare(ctx, &req)
	if err != nil {
		return nil, err
	}

	promo := &model.Promotion{
		Name:          req.Name,
		PromotionType: req.PromotionType,
		Discount:      req.Discount,
		Active:        *req.Active,
		Priority:      req.Priority,
		Description:   req.Description,
		StartDate:     start,
		EndDate:       end,
	}

	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.Create(ctx, tx, promo); err != nil {
			return err
		}
		promo.Targets = model.ToPromotionTargets(req.Targets, promo.ID)
		return s.repo.CreateTargets(ctx, tx, promo.Targets)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("promotion_id", promo.ID).
		Int("targets", len(promo.Targets)).
		Msg("[PromotionService] Promotion created")

	res := model.ToPromotionResponse(promo)
	return &res, nil
}

// UpdatePromotion ghi đè field và thay toàn bộ targets (xóa hết rồi insert lại)
func (s *promotionService) UpdatePromotion(ctx context.Context, id int64, req model.PromotionRequest) (*model.PromotionResponse, error) {
	promo, err := s.findPromotion(ctx, id)
	if err != nil {
		return nil, err
	}

	start, end, err := s.prepare(ctx, &req)
	if err != nil {
		return nil, err
	}

	promo.Name = req.Name
	promo.PromotionType = req.PromotionType
	promo.Discount = req.Discount
	promo.Active = *req.Active
	promo.Priority = req.Priority
	promo.Description = req.Description
	promo.StartDate = start
	promo.EndDate = end

	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.Update(ctx, tx, promo); err != nil {
			return err
		}
		if err := s.repo.DeleteTargets(ctx, tx, id); err != nil {
			return err
		}
		promo.Targets = model.ToPromotionTargets(req.Targets, id)
		return s.repo.CreateTargets(ctx, tx, promo.Targets)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("promotion_id", id).
		Int("targets", len(promo.Targets)).
		Msg("[PromotionService] Promotion updated")

	res := model.ToPromotionResponse(promo)
	return &res, nil
}

// =====================================================
// STATUS / DELETE
// =====================================================

func (s *promotionService) ChangeStatus(ctx context.Context, id int64) (*model.PromotionResponse, error) {
	promo, err := s.findPromotion(ctx, id)
	if err != nil {
		return nil, err
	}

	promo.Active = !promo.Active
	if err := s.repo.SetActive(ctx, nil, id, promo.Active); err != nil {
		return nil, err
	}

	log.Info().Int64("promotion_id", id).Bool("active", promo.Active).Msg("[PromotionService] Promotion status changed")

	res := model.ToPromotionResponse(promo)
	return &res, nil
}

// DeletePromotion xóa cứng: targets trước, promotion sau, cùng transaction
func (s *promotionService) DeletePromotion(ctx context.Context, id int64) error {
	if _, err := s.findPromotion(ctx, id); err != nil {
		return err
	}

	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.DeleteTargets(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	log.Info().Int64("promotion_id", id).Msg("[PromotionService] Promotion deleted")
	return nil
}

// =====================================================
// QUERY
// =====================================================

func (s *promotionService) GetPromotionByID(ctx context.Context, id int64) (*model.PromotionResponse, error) {
	promo, err := s.findPromotion(ctx, id)
	if err != nil {
		return nil, err
	}
	res := model.ToPromotionResponse(promo)
	return &res, nil
}

func (s *promotionService) SearchPromotions(ctx context.Context, req model.SearchPromotionRequest) (*model.PromotionListResult, error) {
	req.PromotionType = strings.ToUpper(strings.TrimSpace(req.PromotionType))
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	page, limit, offset := utils.NormalizePage(req.Page, req.Limit)
	filter := model.PromotionFilter{
		Name:   strings.TrimSpace(req.Name),
		Active: req.Active,
		Limit:  limit,
		Offset: offset,
	}
	if req.PromotionType != "" {
		t := model.PromotionType(req.PromotionType)
		filter.PromotionType = &t
	}
	if req.StartDate != "" {
		d, _ := time.Parse(model.DateLayout, req.StartDate)
		filter.StartFrom = &d
	}
	if req.EndDate != "" {
		d, _ := time.Parse(model.DateLayout, req.EndDate)
		filter.EndTo = &d
	}

	promos, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.PromotionListResult{
		Items:      model.ToPromotionResponses(promos),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

// FindApplicablePromotions trả promotion đang chạy hôm nay cho sản phẩm, đã sắp theo priority.
// Promotions[0] là promotion thắng; khi có Price thì tính luôn giá sau giảm.
func (s *promotionService) FindApplicablePromotions(ctx context.Context, q model.ApplicableQuery) (*model.ApplicablePromotionsResponse, error) {
	ref, err := s.catalog.ResolveProductRef(ctx, q.ProductID, q.VariantID)
	if err != nil {
		return nil, err
	}

	day := s.today()
	candidates, err := s.repo.FindActiveForRef(ctx, *ref, day)
	if err != nil {
		return nil, err
	}

	// repository đã lọc; kiểm tra lại trên model để giữ đúng quy tắc khớp variant
	promos := make([]model.Promotion, 0, len(candidates))
	for i := range candidates {
		if candidates[i].IsAvailableOn(day) && candidates[i].AppliesTo(*ref) {
			promos = append(promos, candidates[i])
		}
	}
	model.SortByPriority(promos, s.order)

	res := &model.ApplicablePromotionsResponse{
		Product:    *ref,
		Promotions: model.ToPromotionResponses(promos),
	}
	if len(promos) == 0 {
		return res, nil
	}

	winner := res.Promotions[0]
	res.Winner = &winner

	if q.Price != nil {
		price := *q.Price
		discount := s.calculator.Calculate(&promos[0], price)
		final := price.Sub(discount)
		res.Price = &price
		res.Discount = &discount
		res.FinalPrice = &final
	}
	return res, nil
}
