package processor

import (
	"context"

	"refspring/internal/jobs"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// ConversionStore defines the database operations required by the settlement engine
type ConversionStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	GetConversionByOrder(ctx context.Context, campaignID uuid.UUID, orderID string) (store.Conversion, error)
	CreateConversionWithQueueItem(ctx context.Context, params store.CreateConversionParams) (store.Conversion, bool, error)
}

// RiskScorer rates the identity behind a conversion
type RiskScorer interface {
	HashIdentity(rawIP string) string
	ScoreConversion(ctx context.Context, ipHash string) int
}

// EventPublisher publishes settlement events
type EventPublisher interface {
	PublishConversionSettled(ctx context.Context, conversion store.Conversion) error
}

// VerificationEnqueuer schedules verification work
type VerificationEnqueuer interface {
	EnqueueVerificationJob(ctx context.Context, payload jobs.VerificationJobPayload) error
}
