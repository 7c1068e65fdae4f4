package processor

import (
	"context"

	"refspring/internal/clients/payments"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]store.Campaign, error)
	AttachCampaignPaymentMethod(ctx context.Context, ownerID, campaignID uuid.UUID, paymentMethodID string) (store.Campaign, error)
	PauseCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error)

	CreateAffiliate(ctx context.Context, params store.CreateAffiliateParams) (store.Affiliate, error)
	GetAffiliatesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Affiliate, error)
}

// PaymentMethods validates payment methods with the payment provider
type PaymentMethods interface {
	GetPaymentMethod(ctx context.Context, paymentMethodID string) (payments.PaymentMethod, error)
}
