package handler

import (
	"context"

	"refspring/internal/store"
	"refspring/internal/verification/processor"

	"github.com/google/uuid"
)

// QueueProcessor drains the verification queue and records reviewer verdicts
type QueueProcessor interface {
	ProcessQueue(ctx context.Context, opts processor.ProcessOptions) (processor.ProcessSummary, error)
	ManualDecision(ctx context.Context, ownerID, conversionID uuid.UUID, approve bool, notes string) (store.Conversion, error)
}
