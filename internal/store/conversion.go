package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const conversionColumns = `id, campaign_id, affiliate_id, order_id, amount, commission, platform_fee, risk_score, status, verified, verified_by, verification_notes, paid_at, created_at, updated_at`

// CreateConversionParams represents parameters for settling a conversion
type CreateConversionParams struct {
	CampaignID  uuid.UUID
	AffiliateID uuid.UUID
	OrderID     string
	Amount      int64
	Commission  int64
	PlatformFee int64
	RiskScore   int
	Priority    int
}

const sqlInsertConversionIfAbsent = `
INSERT INTO conversions (campaign_id, affiliate_id, order_id, amount, commission, platform_fee, risk_score, status, verified)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', FALSE)
ON CONFLICT (campaign_id, order_id) DO NOTHING
RETURNING ` + conversionColumns

const sqlEnqueueVerification = `
INSERT INTO conversion_verification_queue (conversion_id, status, priority)
VALUES ($1, 'pending', $2)
`

// CreateConversionWithQueueItem inserts a pending conversion and its verification
// queue item in one transaction. When a conversion already exists for
// (campaign, order) nothing is written and the stored row is returned with created=false.
func (s *Store) CreateConversionWithQueueItem(ctx context.Context, params CreateConversionParams) (Conversion, bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Conversion{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var conversion Conversion
	err = tx.GetContext(ctx, &conversion, sqlInsertConversionIfAbsent,
		params.CampaignID,
		params.AffiliateID,
		params.OrderID,
		params.Amount,
		params.Commission,
		params.PlatformFee,
		params.RiskScore)
	if errors.Is(err, sql.ErrNoRows) {
		// lost the race or a replay: the unique constraint kept the first row
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return Conversion{}, false, fmt.Errorf("failed to rollback transaction: %w", err)
		}
		existing, err := s.GetConversionByOrder(ctx, params.CampaignID, params.OrderID)
		if err != nil {
			return Conversion{}, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return Conversion{}, false, fmt.Errorf("failed to insert conversion: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlEnqueueVerification, conversion.ID, params.Priority); err != nil {
		return Conversion{}, false, fmt.Errorf("failed to enqueue verification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Conversion{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return conversion, true, nil
}

const sqlGetConversionByOrder = `SELECT ` + conversionColumns + ` FROM conversions WHERE campaign_id = $1 AND order_id = $2`

// GetConversionByOrder retrieves the conversion settled for an order
func (s *Store) GetConversionByOrder(ctx context.Context, campaignID uuid.UUID, orderID string) (Conversion, error) {
	var conversion Conversion
	err := s.db.GetContext(ctx, &conversion, sqlGetConversionByOrder, campaignID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversion{}, ErrNotFound
		}
		return Conversion{}, fmt.Errorf("failed to get conversion by order: %w", err)
	}
	return conversion, nil
}

const sqlGetConversionByID = `SELECT ` + conversionColumns + ` FROM conversions WHERE id = $1`

// GetConversionByID retrieves a conversion by ID
func (s *Store) GetConversionByID(ctx context.Context, conversionID uuid.UUID) (Conversion, error) {
	var conversion Conversion
	err := s.db.GetContext(ctx, &conversion, sqlGetConversionByID, conversionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversion{}, ErrNotFound
		}
		return Conversion{}, fmt.Errorf("failed to get conversion by id: %w", err)
	}
	return conversion, nil
}

// ConversionDecisionParams describes a verification outcome
type ConversionDecisionParams struct {
	ConversionID uuid.UUID
	Status       string
	Verified     bool
	VerifiedBy   string
	Notes        string
	Action       string
	Metadata     JSONB
}

const sqlLockConversionStatus = `SELECT status, verified_by FROM conversions WHERE id = $1 FOR UPDATE`

const sqlApplyConversionDecision = `
UPDATE conversions
SET status = $2, verified = $3, verified_by = $4, verification_notes = $5, updated_at = NOW()
WHERE id = $1
RETURNING ` + conversionColumns

const sqlCloseOpenQueueItems = `
UPDATE conversion_verification_queue
SET status = 'completed', last_error = NULL, updated_at = NOW()
WHERE conversion_id = $1 AND status IN ('pending', 'failed')
`

// ApplyConversionDecision updates a pending conversion's status and writes the
// audit log entry in the same transaction. It returns ErrAlreadyDecided when the
// conversion is no longer pending, or when a system decision finds one the system
// already ruled on. A final decision also closes the conversion's open queue items.
func (s *Store) ApplyConversionDecision(ctx context.Context, params ConversionDecisionParams) (Conversion, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Conversion{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current struct {
		Status     string  `db:"status"`
		VerifiedBy *string `db:"verified_by"`
	}
	if err := tx.GetContext(ctx, &current, sqlLockConversionStatus, params.ConversionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversion{}, ErrNotFound
		}
		return Conversion{}, fmt.Errorf("failed to lock conversion: %w", err)
	}
	if current.Status != ConversionStatusPending {
		return Conversion{}, ErrAlreadyDecided
	}
	if params.VerifiedBy == VerifiedBySystem && current.VerifiedBy != nil {
		return Conversion{}, ErrAlreadyDecided
	}
	oldStatus := current.Status

	var conversion Conversion
	err = tx.GetContext(ctx, &conversion, sqlApplyConversionDecision,
		params.ConversionID,
		params.Status,
		params.Verified,
		params.VerifiedBy,
		params.Notes)
	if err != nil {
		return Conversion{}, fmt.Errorf("failed to apply conversion decision: %w", err)
	}

	newValue := JSONB{"status": params.Status, "verified": params.Verified}
	for k, v := range params.Metadata {
		newValue[k] = v
	}
	notes := params.Notes
	_, err = tx.ExecContext(ctx, sqlCreateAuditLog,
		params.ConversionID,
		params.Action,
		JSONB{"status": oldStatus},
		newValue,
		params.VerifiedBy,
		&notes)
	if err != nil {
		return Conversion{}, fmt.Errorf("failed to write audit log: %w", err)
	}

	if params.Status != ConversionStatusPending {
		if _, err := tx.ExecContext(ctx, sqlCloseOpenQueueItems, params.ConversionID); err != nil {
			return Conversion{}, fmt.Errorf("failed to close queue items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Conversion{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return conversion, nil
}

const sqlListConversionRefs = `SELECT id, campaign_id, affiliate_id FROM conversions`

// ListConversionRefs returns every conversion with its campaign and affiliate references
func (s *Store) ListConversionRefs(ctx context.Context) ([]EntityRef, error) {
	var refs []EntityRef
	err := s.db.SelectContext(ctx, &refs, sqlListConversionRefs)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversion refs: %w", err)
	}
	return refs, nil
}
