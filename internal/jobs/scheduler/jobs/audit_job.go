package jobs

import (
	"context"
	"time"

	"refspring/internal/jobs/workers"
	"refspring/internal/observability"
)

// ConsistencyAuditJob logs dangling references between campaigns, affiliates and conversions
type ConsistencyAuditJob struct {
	worker   *workers.AuditWorker
	logger   *observability.Logger
	interval time.Duration
}

func NewConsistencyAuditJob(worker *workers.AuditWorker, logger *observability.Logger, interval time.Duration) *ConsistencyAuditJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}
	return &ConsistencyAuditJob{
		worker:   worker,
		logger:   logger,
		interval: interval,
	}
}

func (j *ConsistencyAuditJob) Name() string {
	return "consistency_audit"
}

func (j *ConsistencyAuditJob) Schedule() time.Duration {
	return j.interval
}

func (j *ConsistencyAuditJob) Run(ctx context.Context) error {
	_, err := j.worker.Audit(ctx)
	return err
}
