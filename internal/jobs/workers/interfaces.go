package workers

import (
	"context"

	verificationprocessor "refspring/internal/verification/processor"
)

// QueueDrainer processes and requeues verification queue items
type QueueDrainer interface {
	ProcessQueue(ctx context.Context, opts verificationprocessor.ProcessOptions) (verificationprocessor.ProcessSummary, error)
	RequeueFailed(ctx context.Context, limit int) (int64, error)
}

// ConsistencyAuditor reports dangling references between entities
type ConsistencyAuditor interface {
	AuditConsistency(ctx context.Context) ([]string, error)
}
