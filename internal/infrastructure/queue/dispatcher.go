package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"ecommerce-backend/internal/shared"
)

// Enqueuer là phần của *asynq.Client mà dispatcher dùng
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const (
	voucherEmailMaxRetry = 5
	voucherEmailTimeout  = time.Minute
)

// Dispatcher đẩy notification sang worker qua asynq
type Dispatcher struct {
	client Enqueuer
}

func NewDispatcher(client Enqueuer) *Dispatcher {
	return &Dispatcher{client: client}
}

// VoucherEmailTaskID: mỗi lượt phát chỉ có một task đang chờ tại một thời điểm
func VoucherEmailTaskID(voucherCustomerID int64) string {
	return fmt.Sprintf("voucher-email:%d", voucherCustomerID)
}

func (d *Dispatcher) DispatchVoucherEmail(ctx context.Context, payload shared.VoucherEmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal voucher email payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeSendVoucherEmail, body)
	info, err := d.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(voucherEmailMaxRetry),
		asynq.Timeout(voucherEmailTimeout),
		asynq.TaskID(VoucherEmailTaskID(payload.VoucherCustomerID)),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		// task của lần gửi trước vẫn còn trong queue
		log.Warn().
			Int64("voucher_customer_id", payload.VoucherCustomerID).
			Msg("Voucher email already queued")
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue voucher email: %w", err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("voucher_customer_id", payload.VoucherCustomerID).
		Msg("Voucher email enqueued")
	return nil
}
