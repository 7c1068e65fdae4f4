package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const queueItemColumns = `id, conversion_id, status, priority, retry_count, last_error, created_at, updated_at`

const sqlListPendingQueueItems = `
SELECT ` + queueItemColumns + `
FROM conversion_verification_queue
WHERE status = 'pending'
ORDER BY priority DESC, created_at ASC
LIMIT $1
`

// ListPendingQueueItems returns up to limit pending items, highest priority first, oldest first within a priority
func (s *Store) ListPendingQueueItems(ctx context.Context, limit int) ([]VerificationQueueItem, error) {
	var items []VerificationQueueItem
	err := s.db.SelectContext(ctx, &items, sqlListPendingQueueItems, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending queue items: %w", err)
	}
	return items, nil
}

const sqlClaimQueueItem = `
UPDATE conversion_verification_queue
SET status = 'processing', updated_at = NOW()
WHERE id = $1 AND status = 'pending'
`

// ClaimQueueItem moves an item from pending to processing. It returns false when
// another worker claimed the item first.
func (s *Store) ClaimQueueItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimQueueItem, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to claim queue item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

const sqlCompleteQueueItem = `
UPDATE conversion_verification_queue
SET status = 'completed', last_error = NULL, updated_at = NOW()
WHERE id = $1
`

// CompleteQueueItem marks an item done
func (s *Store) CompleteQueueItem(ctx context.Context, itemID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlCompleteQueueItem, itemID)
	if err != nil {
		return fmt.Errorf("failed to complete queue item: %w", err)
	}
	return nil
}

const sqlFailQueueItem = `
UPDATE conversion_verification_queue
SET retry_count = retry_count + 1,
    status = CASE WHEN retry_count + 1 >= $3 THEN 'failed_permanent' ELSE 'failed' END,
    last_error = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + queueItemColumns

// FailQueueItem records a processing failure. The item becomes failed_permanent
// once its retry count reaches maxRetries.
func (s *Store) FailQueueItem(ctx context.Context, itemID uuid.UUID, reason string, maxRetries int) (VerificationQueueItem, error) {
	var item VerificationQueueItem
	err := s.db.GetContext(ctx, &item, sqlFailQueueItem, itemID, reason, maxRetries)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VerificationQueueItem{}, ErrNotFound
		}
		return VerificationQueueItem{}, fmt.Errorf("failed to fail queue item: %w", err)
	}
	return item, nil
}

const sqlRequeueFailedItems = `
UPDATE conversion_verification_queue
SET status = 'pending', updated_at = NOW()
WHERE id IN (
    SELECT id FROM conversion_verification_queue
    WHERE status = 'failed' AND retry_count < $2
    ORDER BY updated_at ASC
    LIMIT $1
)
`

// RequeueFailedItems puts retryable failed items back to pending
func (s *Store) RequeueFailedItems(ctx context.Context, limit, maxRetries int) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlRequeueFailedItems, limit, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue failed items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

const sqlGetQueueItemsByConversion = `
SELECT ` + queueItemColumns + `
FROM conversion_verification_queue
WHERE conversion_id = $1
ORDER BY created_at ASC
`

// GetQueueItemsByConversion lists every queue item of a conversion
func (s *Store) GetQueueItemsByConversion(ctx context.Context, conversionID uuid.UUID) ([]VerificationQueueItem, error) {
	var items []VerificationQueueItem
	err := s.db.SelectContext(ctx, &items, sqlGetQueueItemsByConversion, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue items by conversion: %w", err)
	}
	return items, nil
}
