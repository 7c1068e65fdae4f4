package handler

import (
	"context"

	"refspring/internal/payouts/processor"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
)

// Payouts onboards affiliates for payouts and moves distribution money
type Payouts interface {
	CreatePayoutAccount(ctx context.Context, ownerID, affiliateID uuid.UUID) (processor.PayoutAccount, error)
	TransferDistribution(ctx context.Context, ownerID, distributionID uuid.UUID) (processor.TransferResult, error)
	HandleWebhookEvent(ctx context.Context, event stripe.Event) error
}
