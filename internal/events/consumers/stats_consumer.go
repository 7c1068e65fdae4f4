package consumers

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=consumers

import (
	"context"
	"encoding/json"
	"fmt"

	"refspring/internal/events"
	"refspring/internal/kafka"
	"refspring/internal/observability"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// StatsConsumer keeps the in-process stats cache fresh by dropping entries
// whenever a conversion or lifecycle event touches them
type StatsConsumer struct {
	sources     []MessageSource
	invalidator StatsInvalidator
	logger      *observability.Logger
}

// NewStatsConsumer creates a StatsConsumer reading from every given source
func NewStatsConsumer(invalidator StatsInvalidator, logger *observability.Logger, sources ...MessageSource) *StatsConsumer {
	return &StatsConsumer{
		sources:     sources,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Start consumes all sources until ctx is canceled
func (c *StatsConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("starting stats consumer on %d sources", len(c.sources)))

	g, gctx := errgroup.WithContext(ctx)
	for _, source := range c.sources {
		source := source
		g.Go(func() error {
			return source.Consume(gctx, c.HandleMessage)
		})
	}
	return g.Wait()
}

// HandleMessage decodes one event and invalidates the stats it affects.
// Undecodable events are skipped; unrelated event types are ignored.
func (c *StatsConsumer) HandleMessage(ctx context.Context, msg kafka.Delivery) error {
	var event events.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: decode event: %v", kafka.ErrSkipMessage, err)
	}

	switch event.Type {
	case events.TypeConversionSettled, events.TypeConversionDecided,
		events.TypeAffiliateDeleted, events.TypeCampaignDeleted:
	default:
		return nil
	}

	campaignID, err := uuid.Parse(event.CampaignID)
	if err != nil {
		return fmt.Errorf("%w: campaign id %q", kafka.ErrSkipMessage, event.CampaignID)
	}

	// campaign.deleted carries no affiliate, uuid.Nil matches no cache entry
	affiliateID := uuid.Nil
	if raw, ok := event.Data["affiliate_id"].(string); ok {
		if affiliateID, err = uuid.Parse(raw); err != nil {
			return fmt.Errorf("%w: affiliate id %q", kafka.ErrSkipMessage, raw)
		}
	}

	c.invalidator.InvalidateCampaign(campaignID, affiliateID)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "affiliate_id", Value: affiliateID},
	)
	c.logger.Debug(ctx, fmt.Sprintf("invalidated stats after %s", event.Type))
	return nil
}
