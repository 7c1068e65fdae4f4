package processor

import (
	"context"

	"refspring/internal/clients/payments"
	"refspring/internal/store"

	"github.com/google/uuid"
)

type PayoutStore interface {
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	SetAffiliateStripeAccount(ctx context.Context, affiliateID uuid.UUID, stripeAccountID, payoutStatus string) error
	UpdateAffiliatePayoutStatus(ctx context.Context, stripeAccountID, payoutStatus string) (store.Affiliate, error)
	GetDistributionByID(ctx context.Context, distributionID uuid.UUID) (store.PaymentDistribution, error)
	SetDistributionTransfer(ctx context.Context, distributionID uuid.UUID, transferID, status string) error
	UpdateTransferStatus(ctx context.Context, transferID, status string) (store.PaymentDistribution, error)
}

// ConnectProvider opens connected accounts and moves money to them
type ConnectProvider interface {
	CreateConnectedAccount(ctx context.Context, email string, metadata map[string]string) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	CreateTransfer(ctx context.Context, req payments.TransferRequest) (string, error)
}

type EventPublisher interface {
	PublishPayoutAccountUpdated(ctx context.Context, affiliate store.Affiliate) error
	PublishPayoutTransferUpdated(ctx context.Context, distribution store.PaymentDistribution) error
}
