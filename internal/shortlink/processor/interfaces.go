package processor

import (
	"context"

	"refspring/internal/store"

	"github.com/google/uuid"
)

// ShortLinkStore defines the database operations required by the short link processor
type ShortLinkStore interface {
	GetShortLinkByTarget(ctx context.Context, campaignID, affiliateID uuid.UUID, targetURL string) (store.ShortLink, error)
	ShortCodeExists(ctx context.Context, code string) (bool, error)
	CreateShortLink(ctx context.Context, params store.CreateShortLinkParams) (store.ShortLink, error)
	IncrementShortLinkClicks(ctx context.Context, code string) (store.ShortLink, error)
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
}
