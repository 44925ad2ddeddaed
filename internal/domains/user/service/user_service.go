package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	rankingModel "ecommerce-backend/internal/domains/ranking/model"
	"ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/domains/user/repository"
	"ecommerce-backend/internal/shared/apperror"
	"ecommerce-backend/pkg/jwt"
)

// RankingResolver là phần của ranking service mà user cần
type RankingResolver interface {
	FindBySpending(ctx context.Context, amount decimal.Decimal) (*rankingModel.Ranking, error)
}

type userService struct {
	repo     repository.UserRepository
	rankings RankingResolver
	tokens   *jwt.Manager
}

func NewUserService(repo repository.UserRepository, rankings RankingResolver, tokens *jwt.Manager) ServiceInterface {
	return &userService{
		repo:     repo,
		rankings: rankings,
		tokens:   tokens,
	}
}

// Login xác thực email/password và trả về JWT tokens
func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// 2. FIND USER BY EMAIL
	// Không phân biệt "email không tồn tại" và "sai mật khẩu"
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if u == nil {
		return nil, model.ErrInvalidCredentials
	}

	// 3. VERIFY PASSWORD
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	// 4. CHECK STATUS
	if !u.Active {
		return nil, model.ErrUserInactive
	}

	// 5. GENERATE JWT TOKENS
	accessToken, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.Role())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info().Int64("user_id", u.ID).Str("role", u.Role()).Msg("[UserService] Login")

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.tokens.AccessExpiry()),
		User:         model.ToUserResponse(u),
	}, nil
}

func (s *userService) GetMe(ctx context.Context, userID int64) (*model.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}
	if u == nil {
		return nil, model.ErrUserNotFound.WithDetail("id", userID)
	}
	res := model.ToUserResponse(u)
	return &res, nil
}

// GetCustomer trả về user kind CUSTOMER
func (s *userService) GetCustomer(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if u == nil {
		return nil, model.ErrCustomerNotFound.WithDetail("id", id)
	}
	if !u.IsCustomer() {
		return nil, model.ErrNotCustomer.WithDetail("id", id)
	}
	return u, nil
}

// FindCustomersByIDs trả về đúng các customer được yêu cầu.
// Nếu có id không tồn tại (hoặc không phải customer) -> NotFound kèm danh sách id thiếu.
func (s *userService) FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil, nil
	}

	customers, err := s.repo.FindCustomersByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}

	found := make(map[int64]struct{}, len(customers))
	for _, c := range customers {
		found[c.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range unique {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, model.ErrCustomerNotFound.WithDetail("ids", missing)
	}

	return customers, nil
}

func (s *userService) ListCustomersByRanking(ctx context.Context, rankingID int64) ([]model.User, error) {
	customers, err := s.repo.ListCustomersByRanking(ctx, rankingID)
	if err != nil {
		return nil, fmt.Errorf("list customers by ranking: %w", err)
	}
	return customers, nil
}

// RecordSpending cộng chi tiêu và xếp lại hạng thành viên
//
// Business Logic:
// 1. Customer phải tồn tại
// 2. total_spending += amount
// 3. Ranking mới = band chứa total_spending
func (s *userService) RecordSpending(ctx context.Context, customerID int64, amount decimal.Decimal) (*model.UserResponse, error) {
	if err := (model.RecordSpendingRequest{Amount: amount}).Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	u, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	total := u.Customer.TotalSpending.Add(amount)
	ranking, err := s.rankings.FindBySpending(ctx, total)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSpending(ctx, customerID, total, ranking.ID); err != nil {
		return nil, err
	}

	previous := u.Customer.RankingName
	u.Customer.TotalSpending = total
	u.Customer.RankingID = &ranking.ID
	u.Customer.RankingName = ranking.Name

	if previous != ranking.Name {
		log.Info().
			Int64("customer_id", customerID).
			Str("from", previous).
			Str("to", ranking.Name).
			Msg("[UserService] Customer ranking changed")
	}

	res := model.ToUserResponse(u)
	return &res, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
