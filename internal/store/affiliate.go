package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const affiliateColumns = `id, campaign_id, owner_id, name, email, commission_rate, tracking_code, stripe_account_id, payout_status, created_at`

// CreateAffiliateParams represents parameters for creating an affiliate
type CreateAffiliateParams struct {
	CampaignID     uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Email          string
	CommissionRate float64
	TrackingCode   string
}

const sqlCreateAffiliate = `
INSERT INTO affiliates (campaign_id, owner_id, name, email, commission_rate, tracking_code)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + affiliateColumns

// CreateAffiliate creates an affiliate bound to a campaign
func (s *Store) CreateAffiliate(ctx context.Context, params CreateAffiliateParams) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlCreateAffiliate,
		params.CampaignID,
		params.OwnerID,
		params.Name,
		params.Email,
		params.CommissionRate,
		params.TrackingCode)
	if err != nil {
		if isUniqueViolation(err) {
			return Affiliate{}, ErrConflict
		}
		return Affiliate{}, fmt.Errorf("failed to create affiliate: %w", err)
	}
	return affiliate, nil
}

const sqlGetAffiliateByID = `SELECT ` + affiliateColumns + ` FROM affiliates WHERE id = $1`

// GetAffiliateByID retrieves an affiliate by ID
func (s *Store) GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlGetAffiliateByID, affiliateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		return Affiliate{}, fmt.Errorf("failed to get affiliate by id: %w", err)
	}
	return affiliate, nil
}

const sqlGetAffiliateByStripeAccount = `SELECT ` + affiliateColumns + ` FROM affiliates WHERE stripe_account_id = $1`

// GetAffiliateByStripeAccount resolves the affiliate behind a connected account
func (s *Store) GetAffiliateByStripeAccount(ctx context.Context, stripeAccountID string) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlGetAffiliateByStripeAccount, stripeAccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		return Affiliate{}, fmt.Errorf("failed to get affiliate by stripe account: %w", err)
	}
	return affiliate, nil
}

const sqlGetAffiliatesByCampaign = `SELECT ` + affiliateColumns + ` FROM affiliates WHERE campaign_id = $1 ORDER BY created_at ASC`

// GetAffiliatesByCampaign lists a campaign's affiliates
func (s *Store) GetAffiliatesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Affiliate, error) {
	var affiliates []Affiliate
	err := s.db.SelectContext(ctx, &affiliates, sqlGetAffiliatesByCampaign, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get affiliates by campaign: %w", err)
	}
	return affiliates, nil
}

const sqlSetAffiliateStripeAccount = `
UPDATE affiliates
SET stripe_account_id = $2, payout_status = $3
WHERE id = $1
`

// SetAffiliateStripeAccount binds a connected payout account to an affiliate
func (s *Store) SetAffiliateStripeAccount(ctx context.Context, affiliateID uuid.UUID, stripeAccountID, payoutStatus string) error {
	res, err := s.db.ExecContext(ctx, sqlSetAffiliateStripeAccount, affiliateID, stripeAccountID, payoutStatus)
	if err != nil {
		return fmt.Errorf("failed to set affiliate stripe account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlUpdateAffiliatePayoutStatus = `
UPDATE affiliates
SET payout_status = $2
WHERE stripe_account_id = $1
RETURNING ` + affiliateColumns

// UpdateAffiliatePayoutStatus records the payout capability reported by the payment provider
func (s *Store) UpdateAffiliatePayoutStatus(ctx context.Context, stripeAccountID, payoutStatus string) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlUpdateAffiliatePayoutStatus, stripeAccountID, payoutStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		return Affiliate{}, fmt.Errorf("failed to update affiliate payout status: %w", err)
	}
	return affiliate, nil
}

const sqlGetOwedCommission = `
SELECT COALESCE(SUM(commission), 0) AS owed, COUNT(*) AS conversions
FROM conversions
WHERE affiliate_id = $1 AND paid_at IS NULL AND status NOT IN ('rejected', 'failed')
`

// OwedCommission is the unpaid commission of an affiliate
type OwedCommission struct {
	Owed        int64 `db:"owed"`
	Conversions int   `db:"conversions"`
}

// GetOwedCommission sums the unpaid, non-rejected commission of an affiliate
func (s *Store) GetOwedCommission(ctx context.Context, affiliateID uuid.UUID) (OwedCommission, error) {
	var owed OwedCommission
	err := s.db.GetContext(ctx, &owed, sqlGetOwedCommission, affiliateID)
	if err != nil {
		return OwedCommission{}, fmt.Errorf("failed to get owed commission: %w", err)
	}
	return owed, nil
}

const sqlListAffiliateRefs = `SELECT id, campaign_id FROM affiliates`

// ListAffiliateRefs returns every affiliate with its campaign reference
func (s *Store) ListAffiliateRefs(ctx context.Context) ([]EntityRef, error) {
	var refs []EntityRef
	err := s.db.SelectContext(ctx, &refs, sqlListAffiliateRefs)
	if err != nil {
		return nil, fmt.Errorf("failed to list affiliate refs: %w", err)
	}
	return refs, nil
}
