package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ExpiredVoucherDeactivator là phần của voucher service mà job cần
type ExpiredVoucherDeactivator interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// DeactivateExpiredHandler tắt voucher đã hết hạn (chạy theo lịch hằng ngày)
type DeactivateExpiredHandler struct {
	vouchers ExpiredVoucherDeactivator
}

func NewDeactivateExpiredHandler(vouchers ExpiredVoucherDeactivator) *DeactivateExpiredHandler {
	return &DeactivateExpiredHandler{vouchers: vouchers}
}

func (h *DeactivateExpiredHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	count, err := h.vouchers.DeactivateExpired(ctx)
	if err != nil {
		log.Error().Err(err).Str("task", task.Type()).Msg("Failed to deactivate expired vouchers")
		return fmt.Errorf("deactivate expired vouchers: %w", err)
	}

	log.Info().Int64("count", count).Msg("Expired vouchers deactivated")
	return nil
}
