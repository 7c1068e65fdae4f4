package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Aggregate is the raw roll-up of clicks and conversions for a campaign or affiliate
type Aggregate struct {
	Clicks              int64 `db:"clicks"`
	FlaggedClicks       int64 `db:"flagged_clicks"`
	Conversions         int64 `db:"conversions"`
	PendingConversions  int64 `db:"pending_conversions"`
	VerifiedConversions int64 `db:"verified_conversions"`
	RejectedConversions int64 `db:"rejected_conversions"`
	Revenue             int64 `db:"revenue"`
	Commission          int64 `db:"commission"`
	PlatformFee         int64 `db:"platform_fee"`
}

const sqlCampaignAggregate = `
SELECT
    (SELECT COUNT(*) FROM clicks WHERE campaign_id = $1) AS clicks,
    (SELECT COUNT(*) FROM clicks WHERE campaign_id = $1 AND flagged) AS flagged_clicks,
    COUNT(c.id) AS conversions,
    COUNT(c.id) FILTER (WHERE c.status = 'pending') AS pending_conversions,
    COUNT(c.id) FILTER (WHERE c.status = 'verified') AS verified_conversions,
    COUNT(c.id) FILTER (WHERE c.status = 'rejected') AS rejected_conversions,
    COALESCE(SUM(c.amount) FILTER (WHERE c.status NOT IN ('rejected', 'failed')), 0) AS revenue,
    COALESCE(SUM(c.commission) FILTER (WHERE c.status NOT IN ('rejected', 'failed')), 0) AS commission,
    COALESCE(SUM(c.platform_fee) FILTER (WHERE c.status NOT IN ('rejected', 'failed')), 0) AS platform_fee
FROM conversions c
WHERE c.campaign_id = $1
`

// GetCampaignAggregate rolls up clicks and conversions of a campaign
func (s *Store) GetCampaignAggregate(ctx context.Context, campaignID uuid.UUID) (Aggregate, error) {
	var agg Aggregate
	err := s.db.GetContext(ctx, &agg, sqlCampaignAggregate, campaignID)
	if err != nil {
		return Aggregate{}, fmt.Errorf("failed to get campaign aggregate: %w", err)
	}
	return agg, nil
}

const sqlAffiliateAggregate = `
SELECT
    (SELECT COUNT(*) FROM clicks WHERE affiliate_id = $1) AS clicks,
    (SELECT COUNT(*) FROM clicks WHERE affiliate_id = $1 AND flagged) AS flagged_clicks,
    COUNT(c.id) AS conversions,
    COUNT(c.id) FILTER (WHERE c.status = 'pending') AS pending_conversions,
    COUNT(c.id) FILTER (WHERE c.status = 'verified') AS verified_conversions,
    COUNT(c.id) FILTER (WHERE c.status = 'rejected') AS rejected_conversions,
    COALESCE(SUM(c.amount) FILTER (WHERE c.status NOT IN ('rejected', 'failed')), 0) AS revenue,
    COALESCE(SUM(c.commission) FILTER (WHERE c.status NOT IN ('rejected', 'failed')), 0) AS commission,
    COALESCE(SUM(c.platform_fee) FILTER (WHERE c.status NOT IN ('rejected', 'failed')), 0) AS platform_fee
FROM conversions c
WHERE c.affiliate_id = $1
`

// GetAffiliateAggregate rolls up clicks and conversions of an affiliate
func (s *Store) GetAffiliateAggregate(ctx context.Context, affiliateID uuid.UUID) (Aggregate, error) {
	var agg Aggregate
	err := s.db.GetContext(ctx, &agg, sqlAffiliateAggregate, affiliateID)
	if err != nil {
		return Aggregate{}, fmt.Errorf("failed to get affiliate aggregate: %w", err)
	}
	return agg, nil
}
