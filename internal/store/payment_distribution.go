package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const distributionColumns = `id, campaign_id, affiliate_id, performed_by, total_revenue, total_commissions, platform_fee, affiliate_payments, trigger_reason, notified_at, transfer_id, transfer_status, created_at`

// CreateDistributionParams represents parameters for a payment distribution record
type CreateDistributionParams struct {
	CampaignID        uuid.UUID
	AffiliateID       *uuid.UUID
	PerformedBy       uuid.UUID
	TotalRevenue      int64
	TotalCommissions  int64
	PlatformFee       int64
	AffiliatePayments AffiliatePayments
	TriggerReason     string
}

const sqlInsertAffiliateDistribution = `
INSERT INTO payment_distributions (campaign_id, affiliate_id, performed_by, total_revenue, total_commissions, platform_fee, affiliate_payments, trigger_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (affiliate_id, trigger_reason) DO NOTHING
RETURNING ` + distributionColumns

const sqlGetDistributionByAffiliateTrigger = `
SELECT ` + distributionColumns + `
FROM payment_distributions
WHERE affiliate_id = $1 AND trigger_reason = $2
`

// UpsertAffiliateDistribution records a per-affiliate settlement at most once per
// (affiliate, trigger). A rerun returns the stored record with created=false.
func (s *Store) UpsertAffiliateDistribution(ctx context.Context, params CreateDistributionParams) (PaymentDistribution, bool, error) {
	var dist PaymentDistribution
	err := s.db.GetContext(ctx, &dist, sqlInsertAffiliateDistribution,
		params.CampaignID,
		params.AffiliateID,
		params.PerformedBy,
		params.TotalRevenue,
		params.TotalCommissions,
		params.PlatformFee,
		params.AffiliatePayments,
		params.TriggerReason)
	if err == nil {
		return dist, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return PaymentDistribution{}, false, fmt.Errorf("failed to insert payment distribution: %w", err)
	}

	err = s.db.GetContext(ctx, &dist, sqlGetDistributionByAffiliateTrigger, params.AffiliateID, params.TriggerReason)
	if err != nil {
		return PaymentDistribution{}, false, fmt.Errorf("failed to get payment distribution: %w", err)
	}
	return dist, false, nil
}

const sqlGetDistributionByID = `SELECT ` + distributionColumns + ` FROM payment_distributions WHERE id = $1`

// GetDistributionByID retrieves a payment distribution by ID
func (s *Store) GetDistributionByID(ctx context.Context, distributionID uuid.UUID) (PaymentDistribution, error) {
	var dist PaymentDistribution
	err := s.db.GetContext(ctx, &dist, sqlGetDistributionByID, distributionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PaymentDistribution{}, ErrNotFound
		}
		return PaymentDistribution{}, fmt.Errorf("failed to get payment distribution: %w", err)
	}
	return dist, nil
}

const sqlGetDistributionsByCampaign = `
SELECT ` + distributionColumns + `
FROM payment_distributions
WHERE campaign_id = $1
ORDER BY created_at ASC
`

// GetDistributionsByCampaign lists every distribution recorded for a campaign
func (s *Store) GetDistributionsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PaymentDistribution, error) {
	var dists []PaymentDistribution
	err := s.db.SelectContext(ctx, &dists, sqlGetDistributionsByCampaign, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment distributions by campaign: %w", err)
	}
	return dists, nil
}

const sqlMarkDistributionNotified = `
UPDATE payment_distributions SET notified_at = NOW() WHERE id = $1 AND notified_at IS NULL
`

// MarkDistributionNotified stamps the first successful payment notification
func (s *Store) MarkDistributionNotified(ctx context.Context, distributionID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlMarkDistributionNotified, distributionID)
	if err != nil {
		return fmt.Errorf("failed to mark payment distribution notified: %w", err)
	}
	return nil
}

const sqlSetDistributionTransfer = `
UPDATE payment_distributions SET transfer_id = $2, transfer_status = $3 WHERE id = $1
`

// SetDistributionTransfer attaches a provider transfer to a distribution
func (s *Store) SetDistributionTransfer(ctx context.Context, distributionID uuid.UUID, transferID, status string) error {
	res, err := s.db.ExecContext(ctx, sqlSetDistributionTransfer, distributionID, transferID, status)
	if err != nil {
		return fmt.Errorf("failed to set distribution transfer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlUpdateTransferStatus = `
UPDATE payment_distributions SET transfer_status = $2 WHERE transfer_id = $1
RETURNING ` + distributionColumns

const sqlMarkDistributionConversionsPaid = `
UPDATE conversions
SET paid_at = NOW(), updated_at = NOW()
WHERE campaign_id = $2
  AND paid_at IS NULL
  AND status NOT IN ('rejected', 'failed')
  AND created_at <= $3
  AND affiliate_id IN (
      SELECT (p->>'affiliate_id')::uuid
      FROM payment_distributions d, jsonb_array_elements(d.affiliate_payments) p
      WHERE d.id = $1
  )
`

// UpdateTransferStatus applies a provider transfer event to its distribution.
// A paid transfer stamps paid_at on the conversions the distribution covered,
// so they no longer count as owed.
func (s *Store) UpdateTransferStatus(ctx context.Context, transferID, status string) (PaymentDistribution, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return PaymentDistribution{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dist PaymentDistribution
	err = tx.GetContext(ctx, &dist, sqlUpdateTransferStatus, transferID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PaymentDistribution{}, ErrNotFound
		}
		return PaymentDistribution{}, fmt.Errorf("failed to update transfer status: %w", err)
	}

	if status == TransferStatusPaid {
		_, err = tx.ExecContext(ctx, sqlMarkDistributionConversionsPaid, dist.ID, dist.CampaignID, dist.CreatedAt)
		if err != nil {
			return PaymentDistribution{}, fmt.Errorf("failed to mark conversions paid: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return PaymentDistribution{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return dist, nil
}
