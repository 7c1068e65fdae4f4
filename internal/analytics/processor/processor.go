package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"refspring/internal/cache"
	"refspring/internal/money"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrUnauthorized      = errors.New("unauthorized access to stats")
)

// Stats is the derived view over clicks and conversions of a campaign or affiliate
type Stats struct {
	Clicks              int64     `json:"clicks"`
	FlaggedClicks       int64     `json:"flagged_clicks"`
	Conversions         int64     `json:"conversions"`
	PendingConversions  int64     `json:"pending_conversions"`
	VerifiedConversions int64     `json:"verified_conversions"`
	RejectedConversions int64     `json:"rejected_conversions"`
	Revenue             int64     `json:"revenue"`
	Commission          int64     `json:"commission"`
	PlatformFee         int64     `json:"platform_fee"`
	ConversionRate      float64   `json:"conversion_rate"`
	ComputedAt          time.Time `json:"computed_at"`
}

type StatsProcessor struct {
	store  StatsStore
	cache  *cache.TTL[string, Stats]
	logger *observability.Logger
}

func New(store StatsStore, ttl time.Duration, logger *observability.Logger) StatsProcessor {
	return StatsProcessor{
		store:  store,
		cache:  cache.NewTTL[string, Stats](ttl),
		logger: logger,
	}
}

func campaignKey(id uuid.UUID) string  { return "campaign:" + id.String() }
func affiliateKey(id uuid.UUID) string { return "affiliate:" + id.String() }

// CampaignStats returns the aggregate for a campaign the owner owns
func (p *StatsProcessor) CampaignStats(ctx context.Context, ownerID, campaignID uuid.UUID) (Stats, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Stats{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return Stats{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.OwnerID != ownerID {
		return Stats{}, ErrUnauthorized
	}

	key := campaignKey(campaignID)
	if stats, ok := p.cache.Get(key); ok {
		return stats, nil
	}

	agg, err := p.store.GetCampaignAggregate(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign aggregate", err)
		return Stats{}, fmt.Errorf("failed to get campaign aggregate: %w", err)
	}

	stats := fromAggregate(agg)
	p.cache.Set(key, stats)
	return stats, nil
}

// AffiliateStats returns the aggregate for an affiliate of a campaign the owner owns
func (p *StatsProcessor) AffiliateStats(ctx context.Context, ownerID, affiliateID uuid.UUID) (Stats, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliateID.String()})

	affiliate, err := p.store.GetAffiliateByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Stats{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return Stats{}, fmt.Errorf("failed to get affiliate: %w", err)
	}
	if affiliate.OwnerID != ownerID {
		return Stats{}, ErrUnauthorized
	}

	key := affiliateKey(affiliateID)
	if stats, ok := p.cache.Get(key); ok {
		return stats, nil
	}

	agg, err := p.store.GetAffiliateAggregate(ctx, affiliateID)
	if err != nil {
		p.logger.Error(ctx, "failed to get affiliate aggregate", err)
		return Stats{}, fmt.Errorf("failed to get affiliate aggregate: %w", err)
	}

	stats := fromAggregate(agg)
	p.cache.Set(key, stats)
	return stats, nil
}

// InvalidateCampaign drops the cached stats of a campaign and one of its affiliates
func (p *StatsProcessor) InvalidateCampaign(campaignID, affiliateID uuid.UUID) {
	p.cache.Invalidate(campaignKey(campaignID))
	p.cache.Invalidate(affiliateKey(affiliateID))
}

// Clear drops every cached entry
func (p *StatsProcessor) Clear() {
	p.cache.Clear()
}

func fromAggregate(agg store.Aggregate) Stats {
	return Stats{
		Clicks:              agg.Clicks,
		FlaggedClicks:       agg.FlaggedClicks,
		Conversions:         agg.Conversions,
		PendingConversions:  agg.PendingConversions,
		VerifiedConversions: agg.VerifiedConversions,
		RejectedConversions: agg.RejectedConversions,
		Revenue:             agg.Revenue,
		Commission:          agg.Commission,
		PlatformFee:         agg.PlatformFee,
		ConversionRate:      money.ConversionRate(agg.Conversions, agg.Clicks),
		ComputedAt:          time.Now().UTC(),
	}
}
