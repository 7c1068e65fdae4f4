package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateAuditLogParams represents parameters for an audit log entry
type CreateAuditLogParams struct {
	ConversionID uuid.UUID
	Action       string
	OldValue     JSONB
	NewValue     JSONB
	PerformedBy  string
	Notes        *string
}

const sqlCreateAuditLog = `
INSERT INTO conversion_audit_logs (conversion_id, action, old_value, new_value, performed_by, notes)
VALUES ($1, $2, $3, $4, $5, $6)
`

// CreateAuditLog appends an audit log entry outside of a decision transaction
func (s *Store) CreateAuditLog(ctx context.Context, params CreateAuditLogParams) error {
	_, err := s.db.ExecContext(ctx, sqlCreateAuditLog,
		params.ConversionID,
		params.Action,
		params.OldValue,
		params.NewValue,
		params.PerformedBy,
		params.Notes)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

const sqlGetAuditLogsByConversion = `
SELECT id, conversion_id, action, old_value, new_value, performed_by, notes, created_at
FROM conversion_audit_logs
WHERE conversion_id = $1
ORDER BY created_at ASC
`

// GetAuditLogsByConversion lists the audit trail of a conversion, oldest first
func (s *Store) GetAuditLogsByConversion(ctx context.Context, conversionID uuid.UUID) ([]AuditLogEntry, error) {
	var entries []AuditLogEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetAuditLogsByConversion, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs by conversion: %w", err)
	}
	return entries, nil
}
