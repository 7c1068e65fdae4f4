package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateBlacklistEntryParams represents parameters for banning an identity hash
type CreateBlacklistEntryParams struct {
	IPHash   string
	Reason   string
	Severity string
	Source   string
}

const sqlCreateBlacklistEntry = `
INSERT INTO blacklisted_ips (ip_hash, reason, severity, source, is_active)
VALUES ($1, $2, $3, $4, TRUE)
RETURNING id, ip_hash, reason, severity, is_active, source, created_at
`

// CreateBlacklistEntry appends a blacklist entry; duplicates per hash are allowed
func (s *Store) CreateBlacklistEntry(ctx context.Context, params CreateBlacklistEntryParams) (BlacklistEntry, error) {
	var entry BlacklistEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateBlacklistEntry,
		params.IPHash,
		params.Reason,
		params.Severity,
		params.Source)
	if err != nil {
		return BlacklistEntry{}, fmt.Errorf("failed to create blacklist entry: %w", err)
	}
	return entry, nil
}

const sqlGetActiveBlacklistEntry = `
SELECT id, ip_hash, reason, severity, is_active, source, created_at
FROM blacklisted_ips
WHERE ip_hash = $1 AND is_active
ORDER BY created_at DESC
LIMIT 1
`

// GetActiveBlacklistEntry returns the newest active entry for a hash
func (s *Store) GetActiveBlacklistEntry(ctx context.Context, ipHash string) (BlacklistEntry, error) {
	var entry BlacklistEntry
	err := s.db.GetContext(ctx, &entry, sqlGetActiveBlacklistEntry, ipHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BlacklistEntry{}, ErrNotFound
		}
		return BlacklistEntry{}, fmt.Errorf("failed to get blacklist entry: %w", err)
	}
	return entry, nil
}

// CreateSuspiciousActivityParams represents parameters for a fraud signal
type CreateSuspiciousActivityParams struct {
	Type      string
	Severity  string
	IPHash    string
	UserAgent string
	Metadata  JSONB
}

const sqlCreateSuspiciousActivity = `
INSERT INTO suspicious_activities (type, severity, ip_hash, user_agent, metadata)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, type, severity, ip_hash, user_agent, metadata, investigated, false_positive, created_at
`

// CreateSuspiciousActivity appends a suspicious activity record
func (s *Store) CreateSuspiciousActivity(ctx context.Context, params CreateSuspiciousActivityParams) (SuspiciousActivity, error) {
	var activity SuspiciousActivity
	err := s.db.GetContext(ctx, &activity, sqlCreateSuspiciousActivity,
		params.Type,
		params.Severity,
		params.IPHash,
		params.UserAgent,
		params.Metadata)
	if err != nil {
		return SuspiciousActivity{}, fmt.Errorf("failed to create suspicious activity: %w", err)
	}
	return activity, nil
}

const sqlCountRecentSuspiciousActivities = `
SELECT COUNT(*) FROM (
    SELECT 1 FROM suspicious_activities
    WHERE ip_hash = $1 AND created_at >= $2
    LIMIT $3
) recent
`

// CountRecentSuspiciousActivities counts records for a hash since a point in
// time, stopping at limit.
func (s *Store) CountRecentSuspiciousActivities(ctx context.Context, ipHash string, since time.Time, limit int) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountRecentSuspiciousActivities, ipHash, since, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to count suspicious activities: %w", err)
	}
	return count, nil
}
