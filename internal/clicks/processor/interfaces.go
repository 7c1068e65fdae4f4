package processor

import (
	"context"
	"time"

	fraudprocessor "refspring/internal/fraud/processor"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// ClickStore defines the database operations required by the click recorder
type ClickStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	CreateClick(ctx context.Context, params store.CreateClickParams) (store.Click, error)
}

// FraudChecker hashes identities and consults the blacklist
type FraudChecker interface {
	HashIdentity(rawIP string) string
	IsHashBlacklisted(ctx context.Context, ipHash string) (fraudprocessor.BlacklistResult, error)
	LogSuspiciousActivity(ctx context.Context, activity fraudprocessor.Activity)
}

// ClickGuard is a cross-instance set-if-absent lock
type ClickGuard interface {
	AcquireGuard(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
