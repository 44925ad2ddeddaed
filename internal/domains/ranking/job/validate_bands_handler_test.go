package job

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ecommerce-backend/internal/domains/ranking/model"
	"ecommerce-backend/internal/shared"
)

type stubValidator struct {
	issues []model.BandIssue
	err    error
}

func (s stubValidator) ValidateBands(context.Context) ([]model.BandIssue, error) {
	return s.issues, s.err
}

func TestValidateBandsHandler(t *testing.T) {
	task := asynq.NewTask(shared.TypeValidateRankingBands, nil)
	ctx := context.Background()

	assert.NoError(t, NewValidateBandsHandler(stubValidator{}).ProcessTask(ctx, task))

	withIssues := stubValidator{issues: []model.BandIssue{{
		Kind: model.BandGap, Lower: "S-NEW", Upper: "S-SILVER",
		From: decimal.NewFromInt(1000000), To: decimal.NewFromInt(2000000),
	}}}
	assert.NoError(t, NewValidateBandsHandler(withIssues).ProcessTask(ctx, task), "issues are reported, not failed")

	err := NewValidateBandsHandler(stubValidator{err: errors.New("db down")}).ProcessTask(ctx, task)
	assert.ErrorContains(t, err, "db down")
}
