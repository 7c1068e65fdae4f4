package handler

import (
	"context"

	"refspring/internal/campaign/processor"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// Campaigns manages an owner's campaigns and their affiliates
type Campaigns interface {
	CreateCampaign(ctx context.Context, ownerID uuid.UUID, params processor.CreateCampaignParams) (store.Campaign, error)
	GetCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, ownerID uuid.UUID) ([]store.Campaign, error)
	AttachPaymentMethod(ctx context.Context, ownerID, campaignID uuid.UUID, paymentMethodID string) (store.Campaign, error)
	PauseCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error)
	CreateAffiliate(ctx context.Context, ownerID, campaignID uuid.UUID, params processor.CreateAffiliateParams) (store.Affiliate, error)
	ListAffiliates(ctx context.Context, ownerID, campaignID uuid.UUID) ([]store.Affiliate, error)
}
