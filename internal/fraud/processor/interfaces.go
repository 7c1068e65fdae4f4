package processor

import (
	"context"
	"time"

	"refspring/internal/store"
)

// FraudStore defines the store interface required by the fraud processor
type FraudStore interface {
	CreateBlacklistEntry(ctx context.Context, params store.CreateBlacklistEntryParams) (store.BlacklistEntry, error)
	GetActiveBlacklistEntry(ctx context.Context, ipHash string) (store.BlacklistEntry, error)
	CreateSuspiciousActivity(ctx context.Context, params store.CreateSuspiciousActivityParams) (store.SuspiciousActivity, error)
	CountRecentSuspiciousActivities(ctx context.Context, ipHash string, since time.Time, limit int) (int, error)
}
