package consumers

import (
	"context"

	"refspring/internal/kafka"

	"github.com/google/uuid"
)

// MessageSource delivers messages from one topic until ctx is canceled
type MessageSource interface {
	Consume(ctx context.Context, handler func(context.Context, kafka.Delivery) error) error
}

// StatsInvalidator drops cached campaign and affiliate stats
type StatsInvalidator interface {
	InvalidateCampaign(campaignID, affiliateID uuid.UUID)
}
