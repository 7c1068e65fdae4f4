package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=workers

import (
	"context"
	"encoding/json"
	"fmt"

	"refspring/internal/jobs"
	"refspring/internal/observability"
	verificationprocessor "refspring/internal/verification/processor"

	"github.com/hibiken/asynq"
)

const defaultRequeueLimit = 100

// VerificationWorker drains the conversion verification queue
type VerificationWorker struct {
	queue     QueueDrainer
	batchSize int
	logger    *observability.Logger
}

// NewVerificationWorker creates a new verification worker
func NewVerificationWorker(queue QueueDrainer, batchSize int, logger *observability.Logger) *VerificationWorker {
	return &VerificationWorker{
		queue:     queue,
		batchSize: batchSize,
		logger:    logger,
	}
}

// ProcessVerification drains one batch (for the in-process scheduler)
func (w *VerificationWorker) ProcessVerification(ctx context.Context, payload jobs.VerificationJobPayload) (verificationprocessor.ProcessSummary, error) {
	maxItems := payload.MaxItems
	if maxItems <= 0 {
		maxItems = w.batchSize
	}
	if payload.ConversionID != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "conversion_id", Value: *payload.ConversionID})
	}

	summary, err := w.queue.ProcessQueue(ctx, verificationprocessor.ProcessOptions{MaxItems: maxItems})
	if err != nil {
		w.logger.Error(ctx, "failed to process verification queue", err)
		return summary, fmt.Errorf("failed to process verification queue: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("verification batch: processed %d, approved %d, rejected %d, manual %d, errors %d, skipped %d",
		summary.Processed, summary.Approved, summary.Rejected, summary.ManualReview, summary.Errors, summary.Skipped))
	return summary, nil
}

// ProcessVerificationTask processes a verification task (for Asynq)
func (w *VerificationWorker) ProcessVerificationTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.VerificationJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal verification job payload", err)
		return fmt.Errorf("failed to unmarshal verification job payload: %v: %w", err, asynq.SkipRetry)
	}
	_, err := w.ProcessVerification(ctx, payload)
	return err
}

// Requeue moves retryable failures back to pending
func (w *VerificationWorker) Requeue(ctx context.Context, payload jobs.RequeueJobPayload) (int64, error) {
	limit := payload.Limit
	if limit <= 0 {
		limit = defaultRequeueLimit
	}

	n, err := w.queue.RequeueFailed(ctx, limit)
	if err != nil {
		w.logger.Error(ctx, "failed to requeue verification items", err)
		return 0, fmt.Errorf("failed to requeue verification items: %w", err)
	}
	if n > 0 {
		w.logger.Info(ctx, fmt.Sprintf("requeued %d verification items", n))
	}
	return n, nil
}

// ProcessRequeueTask processes a requeue task (for Asynq)
func (w *VerificationWorker) ProcessRequeueTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.RequeueJobPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal requeue job payload", err)
			return fmt.Errorf("failed to unmarshal requeue job payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	_, err := w.Requeue(ctx, payload)
	return err
}
