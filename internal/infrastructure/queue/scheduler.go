package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/shared"
)

// Registrar là phần của *asynq.Scheduler dùng để đăng ký cron
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.VoucherConfig
}

func NewScheduler(redisOpt asynq.RedisClientOpt, cfg config.VoucherConfig) *Scheduler {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: cfg.Location(),
		LogLevel: asynq.InfoLevel,
	})
	return &Scheduler{scheduler: scheduler, cfg: cfg}
}

func (s *Scheduler) RegisterJobs() error {
	return RegisterJobs(s.scheduler, s.cfg)
}

type cronJob struct {
	name     string
	cronspec string
	taskType string
	opts     []asynq.Option
}

// RegisterJobs đăng ký các job định kỳ của voucher và ranking
func RegisterJobs(r Registrar, cfg config.VoucherConfig) error {
	jobs := []cronJob{
		{
			// sau nửa đêm theo giờ địa phương
			name:     "DeactivateExpiredVouchers",
			cronspec: cfg.ExpireCron,
			taskType: shared.TypeDeactivateExpiredVouchers,
			opts: []asynq.Option{
				asynq.Queue(shared.QueueMaintenance),
				asynq.MaxRetry(3),
				asynq.Timeout(5 * time.Minute),
			},
		},
		{
			name:     "ValidateRankingBands",
			cronspec: cfg.RankingValidateCron,
			taskType: shared.TypeValidateRankingBands,
			opts: []asynq.Option{
				asynq.Queue(shared.QueueMaintenance),
				asynq.MaxRetry(1),
				asynq.Timeout(time.Minute),
			},
		},
	}

	for _, job := range jobs {
		entryID, err := r.Register(job.cronspec, asynq.NewTask(job.taskType, nil), job.opts...)
		if err != nil {
			log.Error().Err(err).Str("job", job.name).Msg("Failed to register scheduled job")
			return fmt.Errorf("register %s: %w", job.name, err)
		}
		log.Info().
			Str("job", job.name).
			Str("cron", job.cronspec).
			Str("entry_id", entryID).
			Msg("✓ Registered scheduled job")
	}
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
