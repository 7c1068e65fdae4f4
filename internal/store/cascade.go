package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var sqlDeleteAffiliateCascade = []string{
	`DELETE FROM clicks WHERE affiliate_id = $1`,
	`DELETE FROM short_links WHERE affiliate_id = $1`,
	`DELETE FROM conversion_verification_queue WHERE conversion_id IN (SELECT id FROM conversions WHERE affiliate_id = $1)`,
	`DELETE FROM conversion_audit_logs WHERE conversion_id IN (SELECT id FROM conversions WHERE affiliate_id = $1)`,
	`DELETE FROM conversions WHERE affiliate_id = $1`,
	`DELETE FROM affiliates WHERE id = $1`,
}

// DeleteAffiliateCascade removes an affiliate and everything it owns in one
// transaction. Every step tolerates zero affected rows so a rerun is a no-op.
func (s *Store) DeleteAffiliateCascade(ctx context.Context, affiliateID uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := execAll(ctx, tx, sqlDeleteAffiliateCascade, affiliateID); err != nil {
		return fmt.Errorf("failed to delete affiliate cascade: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CampaignDeletion is the settlement computed while deleting a campaign
type CampaignDeletion struct {
	Distribution *PaymentDistribution
	Payments     AffiliatePayments
}

const sqlLockCampaignOwner = `SELECT owner_id FROM campaigns WHERE id = $1 FOR UPDATE`

const sqlCampaignOwedBreakdown = `
SELECT a.id AS affiliate_id, a.name, a.email, COALESCE(a.stripe_account_id, '') AS stripe_account_id,
       COALESCE(SUM(c.commission) FILTER (WHERE c.paid_at IS NULL AND c.status NOT IN ('rejected', 'failed')), 0) AS amount,
       COUNT(c.id) FILTER (WHERE c.paid_at IS NULL AND c.status NOT IN ('rejected', 'failed')) AS conversions
FROM affiliates a
LEFT JOIN conversions c ON c.affiliate_id = a.id
WHERE a.campaign_id = $1
GROUP BY a.id, a.name, a.email, a.stripe_account_id
ORDER BY a.id
`

const sqlCampaignRevenueTotals = `
SELECT COALESCE(SUM(amount), 0) AS total_revenue, COALESCE(SUM(platform_fee), 0) AS platform_fee
FROM conversions
WHERE campaign_id = $1 AND status NOT IN ('rejected', 'failed')
`

var sqlDeleteCampaignCascade = []string{
	`DELETE FROM conversion_verification_queue WHERE conversion_id IN (SELECT id FROM conversions WHERE campaign_id = $1)`,
	`DELETE FROM conversion_audit_logs WHERE conversion_id IN (SELECT id FROM conversions WHERE campaign_id = $1)`,
	`DELETE FROM conversions WHERE campaign_id = $1`,
	`DELETE FROM clicks WHERE campaign_id = $1`,
	`DELETE FROM short_links WHERE campaign_id = $1`,
	`DELETE FROM payment_distributions WHERE campaign_id = $1`,
	`DELETE FROM affiliates WHERE campaign_id = $1`,
	`DELETE FROM campaigns WHERE id = $1`,
}

const sqlInsertCampaignDistribution = `
INSERT INTO payment_distributions (campaign_id, affiliate_id, performed_by, total_revenue, total_commissions, platform_fee, affiliate_payments, trigger_reason)
VALUES ($1, NULL, $2, $3, $4, $5, $6, $7)
RETURNING ` + distributionColumns

// DeleteCampaignCascade deletes a campaign and all of its dependents in one
// transaction. Ownership is re-verified under a row lock inside the transaction.
// When money is owed a campaign_deletion distribution is written after the
// historical ones are purged, so it is the only record left for the campaign.
func (s *Store) DeleteCampaignCascade(ctx context.Context, ownerID, campaignID uuid.UUID) (CampaignDeletion, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return CampaignDeletion{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentOwner uuid.UUID
	if err := tx.GetContext(ctx, &currentOwner, sqlLockCampaignOwner, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignDeletion{}, ErrNotFound
		}
		return CampaignDeletion{}, fmt.Errorf("failed to lock campaign: %w", err)
	}
	if currentOwner != ownerID {
		return CampaignDeletion{}, ErrNotOwner
	}

	var breakdown AffiliatePayments
	if err := tx.SelectContext(ctx, &breakdown, sqlCampaignOwedBreakdown, campaignID); err != nil {
		return CampaignDeletion{}, fmt.Errorf("failed to compute owed breakdown: %w", err)
	}
	owed := make(AffiliatePayments, 0, len(breakdown))
	for _, p := range breakdown {
		if p.Amount > 0 {
			owed = append(owed, p)
		}
	}

	var totals struct {
		TotalRevenue int64 `db:"total_revenue"`
		PlatformFee  int64 `db:"platform_fee"`
	}
	if err := tx.GetContext(ctx, &totals, sqlCampaignRevenueTotals, campaignID); err != nil {
		return CampaignDeletion{}, fmt.Errorf("failed to compute revenue totals: %w", err)
	}

	if err := execAll(ctx, tx, sqlDeleteCampaignCascade, campaignID); err != nil {
		return CampaignDeletion{}, fmt.Errorf("failed to delete campaign cascade: %w", err)
	}

	result := CampaignDeletion{Payments: owed}
	if owed.Total() > 0 || totals.TotalRevenue > 0 {
		var dist PaymentDistribution
		err := tx.GetContext(ctx, &dist, sqlInsertCampaignDistribution,
			campaignID,
			ownerID,
			totals.TotalRevenue,
			owed.Total(),
			totals.PlatformFee,
			owed,
			TriggerCampaignDeletion)
		if err != nil {
			return CampaignDeletion{}, fmt.Errorf("failed to write campaign distribution: %w", err)
		}
		result.Distribution = &dist
	}

	if err := tx.Commit(); err != nil {
		return CampaignDeletion{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}

func execAll(ctx context.Context, tx *sqlx.Tx, statements []string, args ...interface{}) error {
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return err
		}
	}
	return nil
}
