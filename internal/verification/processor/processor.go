package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

const (
	DefaultMaxItems    = 10
	DefaultMaxRetries  = 5
	DefaultItemTimeout = 10 * time.Second

	manualReviewNote = "manual review required"

	// outcomeNone marks an item whose conversion was decided elsewhere
	outcomeNone Outcome = ""
)

var (
	ErrConversionNotFound = errors.New("conversion not found")
	ErrAlreadyDecided     = errors.New("conversion already decided")
	ErrUnauthorized       = errors.New("unauthorized access to conversion")
)

type ProcessOptions struct {
	MaxItems     int
	ForceProcess bool
}

type ProcessSummary struct {
	Processed    int `json:"processed"`
	Errors       int `json:"errors"`
	Skipped      int `json:"skipped"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	ManualReview int `json:"manual_review"`
}

type Config struct {
	MaxRetries  int
	ItemTimeout time.Duration
}

type Processor struct {
	store       VerificationStore
	publisher   EventPublisher
	maxRetries  int
	itemTimeout time.Duration
	logger      *observability.Logger
}

func New(store VerificationStore, publisher EventPublisher, cfg Config, logger *observability.Logger) *Processor {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = DefaultItemTimeout
	}
	return &Processor{
		store:       store,
		publisher:   publisher,
		maxRetries:  cfg.MaxRetries,
		itemTimeout: cfg.ItemTimeout,
		logger:      logger,
	}
}

// ProcessQueue drains up to opts.MaxItems pending items, highest priority
// first. Each item is claimed conditionally so concurrent runners never
// decide the same conversion twice. A failed item does not stop the batch.
func (p *Processor) ProcessQueue(ctx context.Context, opts ProcessOptions) (ProcessSummary, error) {
	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}

	items, err := p.store.ListPendingQueueItems(ctx, opts.MaxItems)
	if err != nil {
		p.logger.Error(ctx, "failed to list pending queue items", err)
		return ProcessSummary{}, fmt.Errorf("failed to list pending queue items: %w", err)
	}

	var summary ProcessSummary
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}

		itemCtx := observability.WithFields(ctx,
			observability.Field{Key: "queue_item_id", Value: item.ID.String()},
			observability.Field{Key: "conversion_id", Value: item.ConversionID.String()},
		)

		claimed, err := p.store.ClaimQueueItem(itemCtx, item.ID)
		if err != nil {
			p.logger.Error(itemCtx, "failed to claim queue item", err)
			summary.Errors++
			continue
		}
		if !claimed {
			summary.Skipped++
			continue
		}

		outcome, err := p.processItem(itemCtx, item, opts.ForceProcess)
		if err != nil {
			summary.Errors++
			p.failItem(itemCtx, item, err)
			continue
		}

		if outcome == outcomeNone {
			summary.Skipped++
			continue
		}

		summary.Processed++
		switch outcome {
		case OutcomeApprove:
			summary.Approved++
		case OutcomeReject:
			summary.Rejected++
		default:
			summary.ManualReview++
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "processed", Value: summary.Processed},
		observability.Field{Key: "errors", Value: summary.Errors},
		observability.Field{Key: "skipped", Value: summary.Skipped},
	)
	p.logger.Info(ctx, "verification queue processed")
	return summary, nil
}

func (p *Processor) processItem(ctx context.Context, item store.VerificationQueueItem, force bool) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, p.itemTimeout)
	defer cancel()

	conversion, err := p.store.GetConversionByID(ctx, item.ConversionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrConversionNotFound
		}
		return "", fmt.Errorf("failed to load conversion: %w", err)
	}
	if conversion.Status != store.ConversionStatusPending || conversion.VerifiedBy != nil {
		return p.closeDecided(ctx, item)
	}

	decision := Decision{Outcome: OutcomeManual, Confidence: 0, Reason: "forced manual review"}
	if !force {
		decision = Decide(conversion.Amount, conversion.RiskScore)
	}

	params := store.ConversionDecisionParams{
		ConversionID: conversion.ID,
		VerifiedBy:   store.VerifiedBySystem,
		Metadata:     store.JSONB{"confidence": decision.Confidence, "reason": decision.Reason},
	}
	switch decision.Outcome {
	case OutcomeApprove:
		params.Status = store.ConversionStatusVerified
		params.Verified = true
		params.Notes = decision.Reason
		params.Action = store.AuditActionAutoDecision
	case OutcomeReject:
		params.Status = store.ConversionStatusRejected
		params.Notes = decision.Reason
		params.Action = store.AuditActionAutoDecision
	default:
		params.Status = store.ConversionStatusPending
		params.Notes = manualReviewNote
		params.Action = store.AuditActionManualReview
	}

	updated, err := p.store.ApplyConversionDecision(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyDecided) {
			return p.closeDecided(ctx, item)
		}
		return "", fmt.Errorf("failed to apply decision: %w", err)
	}

	if err := p.store.CompleteQueueItem(ctx, item.ID); err != nil {
		return "", fmt.Errorf("failed to complete queue item: %w", err)
	}

	if decision.Outcome != OutcomeManual {
		p.publishDecided(ctx, updated)
	}
	return decision.Outcome, nil
}

// closeDecided completes an item whose conversion already carries a decision
func (p *Processor) closeDecided(ctx context.Context, item store.VerificationQueueItem) (Outcome, error) {
	if err := p.store.CompleteQueueItem(ctx, item.ID); err != nil {
		return "", fmt.Errorf("failed to complete queue item: %w", err)
	}
	p.logger.Info(ctx, "conversion already decided, queue item closed")
	return outcomeNone, nil
}

// failItem runs on the caller's context so a timed-out item is still recorded
func (p *Processor) failItem(ctx context.Context, item store.VerificationQueueItem, cause error) {
	p.logger.Error(ctx, "verification item failed", cause)

	failed, err := p.store.FailQueueItem(ctx, item.ID, cause.Error(), p.maxRetries)
	if err != nil {
		p.logger.Error(ctx, "failed to mark queue item failed", err)
		return
	}
	if failed.Status == store.QueueStatusFailedPermanent {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "retry_count", Value: failed.RetryCount}),
			"verification item failed permanently")
	}
}

// RequeueFailed moves failed items that still have retries left back to pending
func (p *Processor) RequeueFailed(ctx context.Context, limit int) (int64, error) {
	if limit <= 0 {
		limit = DefaultMaxItems
	}
	n, err := p.store.RequeueFailedItems(ctx, limit, p.maxRetries)
	if err != nil {
		p.logger.Error(ctx, "failed to requeue failed items", err)
		return 0, fmt.Errorf("failed to requeue failed items: %w", err)
	}
	if n > 0 {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "requeued", Value: n}), "requeued failed verification items")
	}
	return n, nil
}

// ManualDecision records a reviewer's verdict on a pending conversion of a
// campaign ownerID owns. The store closes the conversion's open queue items in
// the same transaction.
func (p *Processor) ManualDecision(ctx context.Context, ownerID, conversionID uuid.UUID, approve bool, notes string) (store.Conversion, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversion_id", Value: conversionID.String()})

	conversion, err := p.store.GetConversionByID(ctx, conversionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversion{}, ErrConversionNotFound
		}
		p.logger.Error(ctx, "failed to get conversion", err)
		return store.Conversion{}, fmt.Errorf("failed to get conversion: %w", err)
	}

	campaign, err := p.store.GetCampaignByID(ctx, conversion.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversion{}, ErrConversionNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Conversion{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.OwnerID != ownerID {
		return store.Conversion{}, ErrUnauthorized
	}
	if conversion.Status != store.ConversionStatusPending {
		return store.Conversion{}, ErrAlreadyDecided
	}

	status := store.ConversionStatusRejected
	if approve {
		status = store.ConversionStatusVerified
	}

	updated, err := p.store.ApplyConversionDecision(ctx, store.ConversionDecisionParams{
		ConversionID: conversion.ID,
		Status:       status,
		Verified:     approve,
		VerifiedBy:   ownerID.String(),
		Notes:        notes,
		Action:       store.AuditActionManualDecision,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversion{}, ErrConversionNotFound
		}
		if errors.Is(err, store.ErrAlreadyDecided) {
			return store.Conversion{}, ErrAlreadyDecided
		}
		p.logger.Error(ctx, "failed to apply manual decision", err)
		return store.Conversion{}, fmt.Errorf("failed to apply manual decision: %w", err)
	}

	p.publishDecided(ctx, updated)
	return updated, nil
}

func (p *Processor) publishDecided(ctx context.Context, conversion store.Conversion) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishConversionDecided(ctx, conversion); err != nil {
		p.logger.Error(ctx, "failed to publish conversion decided event", err)
	}
}
