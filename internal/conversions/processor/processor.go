package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"refspring/internal/jobs"
	"refspring/internal/money"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// HighValueAmount is the order amount above which a conversion is queued at high priority
const HighValueAmount = 50000

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidOrderID    = errors.New("order id is required")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrCampaignMismatch  = errors.New("affiliate does not belong to campaign")
	ErrShopMismatch      = errors.New("order shop does not own campaign")
	ErrUnauthorized      = errors.New("unauthorized access to campaign")
)

// SettleRequest describes one order. ShopDomain is set for storefront
// webhooks and must match the campaign's shop.
type SettleRequest struct {
	CampaignID  uuid.UUID
	AffiliateID uuid.UUID
	OrderID     string
	Amount      int64
	ClientIP    string
	ShopDomain  string
}

// SettleResult carries the conversion for the order. Existing is set when the
// order had already been settled and nothing was written.
type SettleResult struct {
	Conversion store.Conversion `json:"conversion"`
	Existing   bool             `json:"existing"`
}

type Processor struct {
	store     ConversionStore
	risk      RiskScorer
	publisher EventPublisher
	jobs      VerificationEnqueuer
	logger    *observability.Logger
}

// New creates the settlement engine. publisher and jobs may be nil when Kafka
// or Redis are disabled.
func New(store ConversionStore, risk RiskScorer, publisher EventPublisher, jobs VerificationEnqueuer, logger *observability.Logger) *Processor {
	return &Processor{
		store:     store,
		risk:      risk,
		publisher: publisher,
		jobs:      jobs,
		logger:    logger,
	}
}

// SettleConversionForOwner settles an order on a campaign ownerID owns
func (p *Processor) SettleConversionForOwner(ctx context.Context, ownerID uuid.UUID, req SettleRequest) (SettleResult, error) {
	campaign, err := p.getCampaign(ctx, req.CampaignID)
	if err != nil {
		return SettleResult{}, err
	}
	if campaign.OwnerID != ownerID {
		return SettleResult{}, ErrUnauthorized
	}
	return p.SettleConversion(ctx, req)
}

// SettleConversion records the commission for an order exactly once. Replays
// of the same (campaign, order) return the first conversion unchanged, even
// when the amount differs.
func (p *Processor) SettleConversion(ctx context.Context, req SettleRequest) (SettleResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: req.CampaignID.String()},
		observability.Field{Key: "affiliate_id", Value: req.AffiliateID.String()},
		observability.Field{Key: "order_id", Value: req.OrderID},
	)

	if req.Amount <= 0 {
		return SettleResult{}, ErrInvalidAmount
	}
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return SettleResult{}, ErrInvalidOrderID
	}

	campaign, err := p.getCampaign(ctx, req.CampaignID)
	if err != nil {
		return SettleResult{}, err
	}
	if req.ShopDomain != "" && (campaign.ShopDomain == nil || !strings.EqualFold(*campaign.ShopDomain, req.ShopDomain)) {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "shop_domain", Value: req.ShopDomain}),
			"order shop does not own campaign")
		return SettleResult{}, ErrShopMismatch
	}

	affiliate, err := p.store.GetAffiliateByID(ctx, req.AffiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SettleResult{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return SettleResult{}, fmt.Errorf("failed to get affiliate: %w", err)
	}
	if affiliate.CampaignID != campaign.ID {
		return SettleResult{}, ErrCampaignMismatch
	}

	existing, err := p.store.GetConversionByOrder(ctx, campaign.ID, req.OrderID)
	if err == nil {
		p.logger.Info(ctx, "order already settled")
		return SettleResult{Conversion: existing, Existing: true}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up conversion", err)
		return SettleResult{}, fmt.Errorf("failed to look up conversion: %w", err)
	}

	riskScore := 0
	if req.ClientIP != "" {
		riskScore = p.risk.ScoreConversion(ctx, p.risk.HashIdentity(req.ClientIP))
	}

	priority := store.QueuePriorityDefault
	if req.Amount > HighValueAmount {
		priority = store.QueuePriorityHigh
	}

	conversion, created, err := p.store.CreateConversionWithQueueItem(ctx, store.CreateConversionParams{
		CampaignID:  campaign.ID,
		AffiliateID: affiliate.ID,
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		Commission:  money.ComputeCommission(req.Amount, affiliate.CommissionRate),
		PlatformFee: money.ComputePlatformFee(req.Amount),
		RiskScore:   riskScore,
		Priority:    priority,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create conversion", err)
		return SettleResult{}, fmt.Errorf("failed to create conversion: %w", err)
	}
	if !created {
		p.logger.Info(ctx, "lost settlement race, returning the stored conversion")
		return SettleResult{Conversion: conversion, Existing: true}, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "conversion_id", Value: conversion.ID.String()})
	p.logger.Info(ctx, "conversion settled")
	p.afterSettle(ctx, conversion, priority == store.QueuePriorityHigh)

	return SettleResult{Conversion: conversion}, nil
}

func (p *Processor) afterSettle(ctx context.Context, conversion store.Conversion, highPriority bool) {
	if p.publisher != nil {
		if err := p.publisher.PublishConversionSettled(ctx, conversion); err != nil {
			p.logger.Error(ctx, "failed to publish conversion settled event", err)
		}
	}
	if p.jobs != nil {
		id := conversion.ID
		err := p.jobs.EnqueueVerificationJob(ctx, jobs.VerificationJobPayload{
			ConversionID: &id,
			HighPriority: highPriority,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to enqueue verification job", err)
		}
	}
}

func (p *Processor) getCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}
