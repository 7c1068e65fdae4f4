package jobs

import (
	"context"
	"fmt"
	"time"

	"refspring/internal/jobs"
	"refspring/internal/jobs/workers"
	"refspring/internal/observability"
)

// VerificationSweepJob requeues retryable failures and then drains one batch
type VerificationSweepJob struct {
	worker   *workers.VerificationWorker
	logger   *observability.Logger
	interval time.Duration
}

// NewVerificationSweepJob creates a new verification sweep job
func NewVerificationSweepJob(worker *workers.VerificationWorker, logger *observability.Logger, interval time.Duration) *VerificationSweepJob {
	if interval == 0 {
		interval = time.Minute
	}
	return &VerificationSweepJob{
		worker:   worker,
		logger:   logger,
		interval: interval,
	}
}

func (j *VerificationSweepJob) Name() string {
	return "verification_sweep"
}

func (j *VerificationSweepJob) Schedule() time.Duration {
	return j.interval
}

func (j *VerificationSweepJob) Run(ctx context.Context) error {
	if _, err := j.worker.Requeue(ctx, jobs.RequeueJobPayload{}); err != nil {
		j.logger.WarnWithError(ctx, "requeue before sweep failed", err)
	}

	summary, err := j.worker.ProcessVerification(ctx, jobs.VerificationJobPayload{})
	if err != nil {
		return fmt.Errorf("verification sweep failed: %w", err)
	}
	if summary.Errors > 0 {
		j.logger.Warn(ctx, fmt.Sprintf("verification sweep finished with %d item errors", summary.Errors))
	}
	return nil
}
