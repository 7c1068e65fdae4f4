package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateClickParams represents parameters for recording a click
type CreateClickParams struct {
	CampaignID  uuid.UUID
	AffiliateID uuid.UUID
	TargetURL   string
	IPHash      string
	UserAgent   string
	Flagged     bool
	FlagReason  *string
}

const sqlCreateClick = `
INSERT INTO clicks (campaign_id, affiliate_id, target_url, ip_hash, user_agent, flagged, flag_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, campaign_id, affiliate_id, target_url, ip_hash, user_agent, flagged, flag_reason, created_at
`

// CreateClick appends a click record
func (s *Store) CreateClick(ctx context.Context, params CreateClickParams) (Click, error) {
	var click Click
	err := s.db.GetContext(ctx, &click, sqlCreateClick,
		params.CampaignID,
		params.AffiliateID,
		params.TargetURL,
		params.IPHash,
		params.UserAgent,
		params.Flagged,
		params.FlagReason)
	if err != nil {
		return Click{}, fmt.Errorf("failed to create click: %w", err)
	}
	return click, nil
}
