package handler

import (
	"context"

	"refspring/internal/analytics/processor"

	"github.com/google/uuid"
)

// StatsReader computes campaign and affiliate totals
type StatsReader interface {
	CampaignStats(ctx context.Context, ownerID, campaignID uuid.UUID) (processor.Stats, error)
	AffiliateStats(ctx context.Context, ownerID, affiliateID uuid.UUID) (processor.Stats, error)
}
