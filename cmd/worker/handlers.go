package main

import (
	"github.com/hibiken/asynq"

	rankingJob "ecommerce-backend/internal/domains/ranking/job"
	voucherJob "ecommerce-backend/internal/domains/voucher/job"
	"ecommerce-backend/internal/infrastructure/email"
	emailjob "ecommerce-backend/internal/infrastructure/email/job"
	"ecommerce-backend/internal/shared"
	"ecommerce-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Email
	voucherEmail *emailjob.VoucherEmailHandler

	// Maintenance
	deactivateExpired *voucherJob.DeactivateExpiredHandler
	validateBands     *rankingJob.ValidateBandsHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(c.Config.SMTP)

	return &HandlerRegistry{
		voucherEmail:      emailjob.NewVoucherEmailHandler(emailSvc),
		deactivateExpired: voucherJob.NewDeactivateExpiredHandler(c.VoucherService),
		validateBands:     rankingJob.NewValidateBandsHandler(c.RankingService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeSendVoucherEmail, h.voucherEmail.ProcessTask)

	mux.HandleFunc(shared.TypeDeactivateExpiredVouchers, h.deactivateExpired.ProcessTask)
	mux.HandleFunc(shared.TypeValidateRankingBands, h.validateBands.ProcessTask)
}
