package events

import (
	"context"
	"time"

	"refspring/internal/kafka"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// Event types
const (
	TypeConversionSettled = "conversion.settled"
	TypeConversionDecided = "conversion.decided"
	TypeAffiliateDeleted  = "affiliate.deleted"
	TypeCampaignDeleted   = "campaign.deleted"
	TypePayoutAccount     = "payout.account_updated"
	TypePayoutTransfer    = "payout.transfer_updated"
)

// Event is the envelope every domain event is published in
type Event struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	CampaignID string                 `json:"campaign_id,omitempty"`
	Data       map[string]interface{} `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

// Producer writes messages to Kafka
type Producer interface {
	ProduceMessage(ctx context.Context, msg kafka.Message) error
}

// Publisher handles publishing domain events to Kafka. A nil producer turns
// every publish into a no-op.
type Publisher struct {
	producer Producer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *Publisher) publish(ctx context.Context, topic, eventType string, campaignID uuid.UUID, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}

	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		CampaignID: campaignID.String(),
		Data:       data,
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.ProduceMessage(ctx, kafka.Message{
		Topic:   topic,
		Key:     campaignID.String(),
		Value:   event,
		Headers: map[string]string{"event_type": eventType},
	})
}

// PublishConversionSettled publishes a conversion.settled event
func (p *Publisher) PublishConversionSettled(ctx context.Context, conversion store.Conversion) error {
	return p.publish(ctx, kafka.TopicConversionEvents, TypeConversionSettled, conversion.CampaignID, map[string]interface{}{
		"conversion_id": conversion.ID.String(),
		"affiliate_id":  conversion.AffiliateID.String(),
		"order_id":      conversion.OrderID,
		"amount":        conversion.Amount,
		"commission":    conversion.Commission,
		"platform_fee":  conversion.PlatformFee,
		"risk_score":    conversion.RiskScore,
	})
}

// PublishConversionDecided publishes a conversion.decided event
func (p *Publisher) PublishConversionDecided(ctx context.Context, conversion store.Conversion) error {
	data := map[string]interface{}{
		"conversion_id": conversion.ID.String(),
		"affiliate_id":  conversion.AffiliateID.String(),
		"status":        conversion.Status,
		"verified":      conversion.Verified,
	}
	if conversion.VerifiedBy != nil {
		data["verified_by"] = *conversion.VerifiedBy
	}
	return p.publish(ctx, kafka.TopicConversionEvents, TypeConversionDecided, conversion.CampaignID, data)
}

// PublishAffiliateDeleted publishes an affiliate.deleted event
func (p *Publisher) PublishAffiliateDeleted(ctx context.Context, campaignID, affiliateID uuid.UUID, owed int64) error {
	return p.publish(ctx, kafka.TopicLifecycleEvents, TypeAffiliateDeleted, campaignID, map[string]interface{}{
		"affiliate_id": affiliateID.String(),
		"owed":         owed,
	})
}

// PublishCampaignDeleted publishes a campaign.deleted event
func (p *Publisher) PublishCampaignDeleted(ctx context.Context, campaignID uuid.UUID, totalCommissions int64) error {
	return p.publish(ctx, kafka.TopicLifecycleEvents, TypeCampaignDeleted, campaignID, map[string]interface{}{
		"total_commissions": totalCommissions,
	})
}

// PublishPayoutAccountUpdated publishes a payout.account_updated event
func (p *Publisher) PublishPayoutAccountUpdated(ctx context.Context, affiliate store.Affiliate) error {
	data := map[string]interface{}{
		"affiliate_id":  affiliate.ID.String(),
		"payout_status": affiliate.PayoutStatus,
	}
	return p.publish(ctx, kafka.TopicPayoutEvents, TypePayoutAccount, affiliate.CampaignID, data)
}

// PublishPayoutTransferUpdated publishes a payout.transfer_updated event
func (p *Publisher) PublishPayoutTransferUpdated(ctx context.Context, distribution store.PaymentDistribution) error {
	data := map[string]interface{}{
		"distribution_id": distribution.ID.String(),
		"transfer_status": distribution.TransferStatus,
	}
	if distribution.TransferID != nil {
		data["transfer_id"] = *distribution.TransferID
	}
	return p.publish(ctx, kafka.TopicPayoutEvents, TypePayoutTransfer, distribution.CampaignID, data)
}
