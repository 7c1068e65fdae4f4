package processor

import (
	"context"

	"refspring/internal/store"

	"github.com/google/uuid"
)

// VerificationStore defines the database operations required by the verification queue
type VerificationStore interface {
	ListPendingQueueItems(ctx context.Context, limit int) ([]store.VerificationQueueItem, error)
	ClaimQueueItem(ctx context.Context, itemID uuid.UUID) (bool, error)
	CompleteQueueItem(ctx context.Context, itemID uuid.UUID) error
	FailQueueItem(ctx context.Context, itemID uuid.UUID, reason string, maxRetries int) (store.VerificationQueueItem, error)
	RequeueFailedItems(ctx context.Context, limit, maxRetries int) (int64, error)
	GetConversionByID(ctx context.Context, conversionID uuid.UUID) (store.Conversion, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ApplyConversionDecision(ctx context.Context, params store.ConversionDecisionParams) (store.Conversion, error)
}

// EventPublisher publishes verification outcomes
type EventPublisher interface {
	PublishConversionDecided(ctx context.Context, conversion store.Conversion) error
}
