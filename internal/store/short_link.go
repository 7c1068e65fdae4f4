package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const shortLinkColumns = `id, short_code, campaign_id, affiliate_id, target_url, click_count, created_at`

const sqlGetShortLinkByTarget = `
SELECT ` + shortLinkColumns + `
FROM short_links
WHERE campaign_id = $1 AND affiliate_id = $2 AND target_url = $3
`

// GetShortLinkByTarget finds the short link for a (campaign, affiliate, target) triple
func (s *Store) GetShortLinkByTarget(ctx context.Context, campaignID, affiliateID uuid.UUID, targetURL string) (ShortLink, error) {
	var link ShortLink
	err := s.db.GetContext(ctx, &link, sqlGetShortLinkByTarget, campaignID, affiliateID, targetURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShortLink{}, ErrNotFound
		}
		return ShortLink{}, fmt.Errorf("failed to get short link by target: %w", err)
	}
	return link, nil
}

const sqlShortCodeExists = `SELECT EXISTS (SELECT 1 FROM short_links WHERE short_code = $1)`

// ShortCodeExists reports whether a code is already taken
func (s *Store) ShortCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlShortCodeExists, code)
	if err != nil {
		return false, fmt.Errorf("failed to check short code: %w", err)
	}
	return exists, nil
}

// CreateShortLinkParams represents parameters for creating a short link
type CreateShortLinkParams struct {
	ShortCode   string
	CampaignID  uuid.UUID
	AffiliateID uuid.UUID
	TargetURL   string
}

const sqlCreateShortLink = `
INSERT INTO short_links (short_code, campaign_id, affiliate_id, target_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (campaign_id, affiliate_id, target_url) DO UPDATE SET target_url = EXCLUDED.target_url
RETURNING ` + shortLinkColumns

// CreateShortLink inserts a short link. A concurrent insert of the same triple
// returns the row that won, so the triple maps to exactly one code.
func (s *Store) CreateShortLink(ctx context.Context, params CreateShortLinkParams) (ShortLink, error) {
	var link ShortLink
	err := s.db.GetContext(ctx, &link, sqlCreateShortLink,
		params.ShortCode,
		params.CampaignID,
		params.AffiliateID,
		params.TargetURL)
	if err != nil {
		return ShortLink{}, fmt.Errorf("failed to create short link: %w", err)
	}
	return link, nil
}

const sqlIncrementShortLinkClicks = `
UPDATE short_links
SET click_count = click_count + 1
WHERE short_code = $1
RETURNING ` + shortLinkColumns

// IncrementShortLinkClicks resolves a code and counts the hit atomically
func (s *Store) IncrementShortLinkClicks(ctx context.Context, code string) (ShortLink, error) {
	var link ShortLink
	err := s.db.GetContext(ctx, &link, sqlIncrementShortLinkClicks, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShortLink{}, ErrNotFound
		}
		return ShortLink{}, fmt.Errorf("failed to increment short link clicks: %w", err)
	}
	return link, nil
}
