package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var _ Storer = (*Store)(nil)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	GetDB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Campaign operations
	CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error)
	GetCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Campaign, error)
	AttachCampaignPaymentMethod(ctx context.Context, ownerID, campaignID uuid.UUID, paymentMethodID string) (Campaign, error)
	PauseCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (Campaign, error)
	PauseCampaignsByShopDomain(ctx context.Context, shopDomain string) (int64, error)
	ListCampaignRefs(ctx context.Context) ([]EntityRef, error)

	// Affiliate operations
	CreateAffiliate(ctx context.Context, params CreateAffiliateParams) (Affiliate, error)
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (Affiliate, error)
	GetAffiliateByStripeAccount(ctx context.Context, stripeAccountID string) (Affiliate, error)
	GetAffiliatesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Affiliate, error)
	SetAffiliateStripeAccount(ctx context.Context, affiliateID uuid.UUID, stripeAccountID, payoutStatus string) error
	UpdateAffiliatePayoutStatus(ctx context.Context, stripeAccountID, payoutStatus string) (Affiliate, error)
	GetOwedCommission(ctx context.Context, affiliateID uuid.UUID) (OwedCommission, error)
	ListAffiliateRefs(ctx context.Context) ([]EntityRef, error)

	// Cascading deletes
	DeleteAffiliateCascade(ctx context.Context, affiliateID uuid.UUID) error
	DeleteCampaignCascade(ctx context.Context, ownerID, campaignID uuid.UUID) (CampaignDeletion, error)

	// Short links and clicks
	GetShortLinkByTarget(ctx context.Context, campaignID, affiliateID uuid.UUID, targetURL string) (ShortLink, error)
	ShortCodeExists(ctx context.Context, code string) (bool, error)
	CreateShortLink(ctx context.Context, params CreateShortLinkParams) (ShortLink, error)
	IncrementShortLinkClicks(ctx context.Context, code string) (ShortLink, error)
	CreateClick(ctx context.Context, params CreateClickParams) (Click, error)

	// Conversion operations
	CreateConversionWithQueueItem(ctx context.Context, params CreateConversionParams) (Conversion, bool, error)
	GetConversionByOrder(ctx context.Context, campaignID uuid.UUID, orderID string) (Conversion, error)
	GetConversionByID(ctx context.Context, conversionID uuid.UUID) (Conversion, error)
	ApplyConversionDecision(ctx context.Context, params ConversionDecisionParams) (Conversion, error)
	ListConversionRefs(ctx context.Context) ([]EntityRef, error)
	CreateAuditLog(ctx context.Context, params CreateAuditLogParams) error
	GetAuditLogsByConversion(ctx context.Context, conversionID uuid.UUID) ([]AuditLogEntry, error)

	// Verification queue
	ListPendingQueueItems(ctx context.Context, limit int) ([]VerificationQueueItem, error)
	ClaimQueueItem(ctx context.Context, itemID uuid.UUID) (bool, error)
	CompleteQueueItem(ctx context.Context, itemID uuid.UUID) error
	FailQueueItem(ctx context.Context, itemID uuid.UUID, reason string, maxRetries int) (VerificationQueueItem, error)
	RequeueFailedItems(ctx context.Context, limit, maxRetries int) (int64, error)
	GetQueueItemsByConversion(ctx context.Context, conversionID uuid.UUID) ([]VerificationQueueItem, error)

	// Fraud
	CreateBlacklistEntry(ctx context.Context, params CreateBlacklistEntryParams) (BlacklistEntry, error)
	GetActiveBlacklistEntry(ctx context.Context, ipHash string) (BlacklistEntry, error)
	CreateSuspiciousActivity(ctx context.Context, params CreateSuspiciousActivityParams) (SuspiciousActivity, error)
	CountRecentSuspiciousActivities(ctx context.Context, ipHash string, since time.Time, limit int) (int, error)

	// Payment distributions
	UpsertAffiliateDistribution(ctx context.Context, params CreateDistributionParams) (PaymentDistribution, bool, error)
	GetDistributionByID(ctx context.Context, distributionID uuid.UUID) (PaymentDistribution, error)
	GetDistributionsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PaymentDistribution, error)
	MarkDistributionNotified(ctx context.Context, distributionID uuid.UUID) error
	SetDistributionTransfer(ctx context.Context, distributionID uuid.UUID, transferID, status string) error
	UpdateTransferStatus(ctx context.Context, transferID, status string) (PaymentDistribution, error)

	// Stats
	GetCampaignAggregate(ctx context.Context, campaignID uuid.UUID) (Aggregate, error)
	GetAffiliateAggregate(ctx context.Context, affiliateID uuid.UUID) (Aggregate, error)
}
