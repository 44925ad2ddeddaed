package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"ecommerce-backend/internal/domains/ranking/model"
	"ecommerce-backend/internal/domains/ranking/repository"
	"ecommerce-backend/pkg/cache"
)

const cacheKeyRankings = "rankings:all"

type rankingService struct {
	repo     repository.RankingRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewRankingService tạo service; cache có thể nil (bỏ qua cache)
func NewRankingService(repo repository.RankingRepository, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &rankingService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// GetByID lấy ranking theo ID, NotFound nếu không có
func (s *rankingService) GetByID(ctx context.Context, id int64) (*model.Ranking, error) {
	ranking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ranking: %w", err)
	}
	if ranking == nil {
		return nil, model.ErrRankingNotFound.WithDetail("id", id)
	}
	return ranking, nil
}

// FindByName lấy ranking theo tên, NotFound nếu không có
func (s *rankingService) FindByName(ctx context.Context, name string) (*model.Ranking, error) {
	ranking, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find ranking by name: %w", err)
	}
	if ranking == nil {
		return nil, model.ErrRankingNotFound.WithDetail("name", name)
	}
	return ranking, nil
}

// List đọc từ cache trước, miss thì query DB rồi set lại cache
func (s *rankingService) List(ctx context.Context) ([]model.Ranking, error) {
	if s.cache != nil {
		var cached []model.Ranking
		found, err := s.cache.Get(ctx, cacheKeyRankings, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("[RankingService] Cache get failed")
		} else if found {
			return cached, nil
		}
	}

	rankings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}

	if s.cache != nil && len(rankings) > 0 {
		if err := s.cache.Set(ctx, cacheKeyRankings, rankings, s.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("[RankingService] Cache set failed")
		}
	}
	return rankings, nil
}

// FindBySpending trả về hạng tương ứng tổng chi tiêu
func (s *rankingService) FindBySpending(ctx context.Context, amount decimal.Decimal) (*model.Ranking, error) {
	rankings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ranking, ok := model.FindBySpending(rankings, amount)
	if !ok {
		return nil, model.ErrNoRankingBand.WithDetail("amount", amount.String())
	}
	return ranking, nil
}

func (s *rankingService) EnsureSeed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count rankings: %w", err)
	}

	if count == 0 {
		if err := s.repo.CreateMany(ctx, nil, model.DefaultRankings()); err != nil {
			return fmt.Errorf("seed rankings: %w", err)
		}
		log.Info().Int("count", len(model.DefaultRankings())).Msg("[RankingService] Seeded default rankings")
		s.invalidate(ctx)
	}

	// Không chặn startup, chỉ cảnh báo
	if _, err := s.ValidateBands(ctx); err != nil {
		return err
	}
	return nil
}

// ValidateBands kiểm tra bộ ranking hiện tại và log từng vấn đề
func (s *rankingService) ValidateBands(ctx context.Context) ([]model.BandIssue, error) {
	rankings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	issues := model.ValidateBands(rankings)
	for _, issue := range issues {
		log.Warn().
			Str("kind", string(issue.Kind)).
			Str("lower", issue.Lower).
			Str("upper", issue.Upper).
			Str("from", issue.From.String()).
			Str("to", issue.To.String()).
			Msg("[RankingService] Spending band issue")
	}
	return issues, nil
}

func (s *rankingService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyRankings); err != nil {
		log.Warn().Err(err).Msg("[RankingService] Cache invalidate failed")
	}
}
