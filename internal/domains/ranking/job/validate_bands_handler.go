package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/domains/ranking/model"
)

type BandValidator interface {
	ValidateBands(ctx context.Context) ([]model.BandIssue, error)
}

// ValidateBandsHandler kiểm tra định kỳ các khoảng chi tiêu của ranking.
// Chỉ log cảnh báo, không sửa dữ liệu.
type ValidateBandsHandler struct {
	rankings BandValidator
}

func NewValidateBandsHandler(rankings BandValidator) *ValidateBandsHandler {
	return &ValidateBandsHandler{rankings: rankings}
}

func (h *ValidateBandsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	issues, err := h.rankings.ValidateBands(ctx)
	if err != nil {
		log.Error().Err(err).Str("task", task.Type()).Msg("Failed to validate ranking bands")
		return fmt.Errorf("validate ranking bands: %w", err)
	}

	if len(issues) == 0 {
		log.Debug().Msg("Ranking bands are contiguous")
		return nil
	}
	log.Warn().Int("issues", len(issues)).Msg("Ranking bands have gaps or overlaps")
	return nil
}
