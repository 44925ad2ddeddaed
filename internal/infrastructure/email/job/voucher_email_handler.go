package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/infrastructure/email"
	"ecommerce-backend/internal/shared"
)

// VoucherEmailHandler xử lý task email:voucher
type VoucherEmailHandler struct {
	emailService email.EmailService
}

func NewVoucherEmailHandler(emailService email.EmailService) *VoucherEmailHandler {
	return &VoucherEmailHandler{emailService: emailService}
}

func (h *VoucherEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.VoucherEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal VoucherEmail payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	// payload thiếu dữ liệu thì retry cũng không giúp được
	if payload.Email == "" || payload.Code == "" {
		log.Error().
			Int64("voucher_customer_id", payload.VoucherCustomerID).
			Msg("VoucherEmail payload missing email or code")
		return fmt.Errorf("invalid voucher email payload: %w", asynq.SkipRetry)
	}

	log.Info().
		Int64("voucher_id", payload.VoucherID).
		Int64("voucher_customer_id", payload.VoucherCustomerID).
		Str("email", payload.Email).
		Msg("Processing voucher email")

	req, err := email.BuildVoucherEmail(payload)
	if err != nil {
		return fmt.Errorf("build voucher email: %w", err)
	}

	if err := h.emailService.SendEmail(ctx, req); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to send voucher email")
		if errors.Is(err, email.ErrInvalidRequest) {
			return fmt.Errorf("send voucher email: %w: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("send voucher email: %w", err)
	}

	log.Info().
		Int64("voucher_customer_id", payload.VoucherCustomerID).
		Str("email", payload.Email).
		Msg("Voucher email sent successfully")
	return nil
}
