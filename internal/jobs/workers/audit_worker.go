package workers

import (
	"context"
	"fmt"

	"refspring/internal/observability"

	"github.com/hibiken/asynq"
)

// AuditWorker runs the referential consistency audit
type AuditWorker struct {
	auditor ConsistencyAuditor
	logger  *observability.Logger
}

func NewAuditWorker(auditor ConsistencyAuditor, logger *observability.Logger) *AuditWorker {
	return &AuditWorker{auditor: auditor, logger: logger}
}

// Audit logs every dangling reference and returns how many were found
func (w *AuditWorker) Audit(ctx context.Context) (int, error) {
	issues, err := w.auditor.AuditConsistency(ctx)
	if err != nil {
		w.logger.Error(ctx, "consistency audit failed", err)
		return 0, fmt.Errorf("consistency audit failed: %w", err)
	}

	for _, issue := range issues {
		w.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "issue", Value: issue}), "consistency issue")
	}
	if len(issues) == 0 {
		w.logger.Info(ctx, "consistency audit clean")
	}
	return len(issues), nil
}

// ProcessConsistencyAuditTask processes an audit task (for Asynq)
func (w *AuditWorker) ProcessConsistencyAuditTask(ctx context.Context, _ *asynq.Task) error {
	_, err := w.Audit(ctx)
	return err
}
