package processor

import (
	"context"

	"refspring/internal/store"

	"github.com/google/uuid"
)

// StatsStore defines the database operations required by StatsProcessor
type StatsStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	GetCampaignAggregate(ctx context.Context, campaignID uuid.UUID) (store.Aggregate, error)
	GetAffiliateAggregate(ctx context.Context, affiliateID uuid.UUID) (store.Aggregate, error)
}
