package processor

import (
	"context"

	"refspring/internal/email"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// ReconcileStore defines the database operations required for cascading deletion and audits
type ReconcileStore interface {
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetOwedCommission(ctx context.Context, affiliateID uuid.UUID) (store.OwedCommission, error)
	UpsertAffiliateDistribution(ctx context.Context, params store.CreateDistributionParams) (store.PaymentDistribution, bool, error)
	MarkDistributionNotified(ctx context.Context, distributionID uuid.UUID) error
	DeleteAffiliateCascade(ctx context.Context, affiliateID uuid.UUID) error
	DeleteCampaignCascade(ctx context.Context, ownerID, campaignID uuid.UUID) (store.CampaignDeletion, error)
	ListCampaignRefs(ctx context.Context) ([]store.EntityRef, error)
	ListAffiliateRefs(ctx context.Context) ([]store.EntityRef, error)
	ListConversionRefs(ctx context.Context) ([]store.EntityRef, error)
}

// PaymentNotifier tells affiliates about settled commission
type PaymentNotifier interface {
	SendPaymentNotification(ctx context.Context, notice email.PaymentNotice) error
	SendCampaignSettlement(ctx context.Context, notice email.PaymentNotice) error
}

// EventPublisher announces deletions
type EventPublisher interface {
	PublishAffiliateDeleted(ctx context.Context, campaignID, affiliateID uuid.UUID, owed int64) error
	PublishCampaignDeleted(ctx context.Context, campaignID uuid.UUID, totalCommissions int64) error
}
