package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const campaignColumns = `id, owner_id, name, target_url, shop_domain, is_active, is_draft, payment_configured, payment_method_id, default_commission_rate, created_at, updated_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	OwnerID               uuid.UUID
	Name                  string
	TargetURL             string
	ShopDomain            *string
	DefaultCommissionRate float64
}

const sqlCreateCampaign = `
INSERT INTO campaigns (owner_id, name, target_url, shop_domain, default_commission_rate)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + campaignColumns

// CreateCampaign creates a campaign in draft state without payment configured
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.OwnerID,
		params.Name,
		params.TargetURL,
		params.ShopDomain,
		params.DefaultCommissionRate)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignsByOwner = `SELECT ` + campaignColumns + ` FROM campaigns WHERE owner_id = $1 ORDER BY created_at DESC`

// GetCampaignsByOwner lists an owner's campaigns, newest first
func (s *Store) GetCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetCampaignsByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns by owner: %w", err)
	}
	return campaigns, nil
}

const sqlAttachCampaignPaymentMethod = `
UPDATE campaigns
SET payment_method_id = $3, payment_configured = TRUE, is_draft = FALSE, is_active = TRUE, updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + campaignColumns

// AttachCampaignPaymentMethod configures payment and activates the campaign in one statement,
// so a campaign is never active without payment.
func (s *Store) AttachCampaignPaymentMethod(ctx context.Context, ownerID, campaignID uuid.UUID, paymentMethodID string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlAttachCampaignPaymentMethod, campaignID, ownerID, paymentMethodID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to attach campaign payment method: %w", err)
	}
	return campaign, nil
}

const sqlPauseCampaign = `
UPDATE campaigns
SET is_active = FALSE, updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + campaignColumns

// PauseCampaign deactivates a campaign owned by ownerID
func (s *Store) PauseCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlPauseCampaign, campaignID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to pause campaign: %w", err)
	}
	return campaign, nil
}

const sqlPauseCampaignsByShopDomain = `
UPDATE campaigns
SET is_active = FALSE, updated_at = NOW()
WHERE shop_domain = $1 AND is_active
`

// PauseCampaignsByShopDomain deactivates every campaign bound to a store front
func (s *Store) PauseCampaignsByShopDomain(ctx context.Context, shopDomain string) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlPauseCampaignsByShopDomain, shopDomain)
	if err != nil {
		return 0, fmt.Errorf("failed to pause campaigns by shop domain: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

const sqlListCampaignRefs = `SELECT id FROM campaigns`

// ListCampaignRefs returns every campaign id
func (s *Store) ListCampaignRefs(ctx context.Context) ([]EntityRef, error) {
	var refs []EntityRef
	err := s.db.SelectContext(ctx, &refs, sqlListCampaignRefs)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign refs: %w", err)
	}
	return refs, nil
}
