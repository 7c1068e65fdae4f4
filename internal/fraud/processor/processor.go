package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"refspring/internal/cache"
	"refspring/internal/observability"
	"refspring/internal/store"
)

const (
	hashLength = 32

	// Escalation settings
	escalationWindow    = 24 * time.Hour
	escalationThreshold = 3
	escalationCountCap  = 10

	// Risk scoring
	blacklistedRiskScore = 95
	riskPerActivity      = 20
	maxActivityRisk      = 70
)

var (
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrEmptyIdentity   = errors.New("identity is empty")
	ErrEmptyReason     = errors.New("reason is empty")
)

// BlacklistResult is the outcome of a blacklist lookup
type BlacklistResult struct {
	Blacklisted bool   `json:"blacklisted"`
	Reason      string `json:"reason,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

// Activity is a suspicious behaviour observed for an identity hash
type Activity struct {
	Type      string
	Severity  string
	IPHash    string
	UserAgent string
	Metadata  store.JSONB
}

// Processor owns identity hashing, the blacklist and suspicious activity escalation
type Processor struct {
	store  FraudStore
	salt   []byte
	cache  *cache.TTL[string, BlacklistResult]
	logger *observability.Logger
	now    func() time.Time
}

// New creates a fraud processor. The blacklist cache keeps positive lookups for cacheTTL.
func New(store FraudStore, salt string, cacheTTL time.Duration, logger *observability.Logger) *Processor {
	return &Processor{
		store:  store,
		salt:   []byte(salt),
		cache:  cache.NewTTL[string, BlacklistResult](cacheTTL),
		logger: logger,
		now:    time.Now,
	}
}

// HashIdentity derives the stored identity of a raw IP: HMAC-SHA256 keyed by
// the process salt, hex encoded and truncated to 32 characters.
func (p *Processor) HashIdentity(rawIP string) string {
	mac := hmac.New(sha256.New, p.salt)
	mac.Write([]byte(rawIP))
	return hex.EncodeToString(mac.Sum(nil))[:hashLength]
}

// IsBlacklisted checks a raw IP against the blacklist
func (p *Processor) IsBlacklisted(ctx context.Context, rawIP string) (BlacklistResult, error) {
	return p.IsHashBlacklisted(ctx, p.HashIdentity(rawIP))
}

// IsHashBlacklisted checks an identity hash against the cache, then the store.
// Only hits are cached.
func (p *Processor) IsHashBlacklisted(ctx context.Context, ipHash string) (BlacklistResult, error) {
	if res, ok := p.cache.Get(ipHash); ok {
		return res, nil
	}

	entry, err := p.store.GetActiveBlacklistEntry(ctx, ipHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return BlacklistResult{}, nil
		}
		p.logger.Error(ctx, "failed to look up blacklist", err)
		return BlacklistResult{}, fmt.Errorf("failed to look up blacklist: %w", err)
	}

	res := BlacklistResult{Blacklisted: true, Reason: entry.Reason, Severity: entry.Severity}
	p.cache.Set(ipHash, res)
	return res, nil
}

// AddToBlacklist bans an identity hash and writes the result through to the cache.
// Repeated entries for the same hash are tolerated.
func (p *Processor) AddToBlacklist(ctx context.Context, ipHash, reason, severity, source string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ip_hash", Value: ipHash},
		observability.Field{Key: "severity", Value: severity},
		observability.Field{Key: "source", Value: source},
	)

	if ipHash == "" {
		return ErrEmptyIdentity
	}
	if reason == "" {
		return ErrEmptyReason
	}
	if !isValidSeverity(severity) {
		return ErrInvalidSeverity
	}

	_, err := p.store.CreateBlacklistEntry(ctx, store.CreateBlacklistEntryParams{
		IPHash:   ipHash,
		Reason:   reason,
		Severity: severity,
		Source:   source,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to add blacklist entry", err)
		return err
	}

	p.cache.Set(ipHash, BlacklistResult{Blacklisted: true, Reason: reason, Severity: severity})
	p.logger.Info(ctx, "identity blacklisted")
	return nil
}

// LogSuspiciousActivity records an activity and escalates it. A critical
// activity blacklists the identity at once; a high one blacklists it once the
// identity has three or more records in the last 24 hours, the new one
// included. Storage failures are logged and never returned.
func (p *Processor) LogSuspiciousActivity(ctx context.Context, activity Activity) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ip_hash", Value: activity.IPHash},
		observability.Field{Key: "activity_type", Value: activity.Type},
		observability.Field{Key: "severity", Value: activity.Severity},
	)

	_, err := p.store.CreateSuspiciousActivity(ctx, store.CreateSuspiciousActivityParams{
		Type:      activity.Type,
		Severity:  activity.Severity,
		IPHash:    activity.IPHash,
		UserAgent: activity.UserAgent,
		Metadata:  activity.Metadata,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record suspicious activity", err)
		return
	}

	switch activity.Severity {
	case store.SeverityCritical:
		reason := fmt.Sprintf("critical suspicious activity: %s", activity.Type)
		if err := p.AddToBlacklist(ctx, activity.IPHash, reason, store.SeverityCritical, store.BlacklistSourceAutomatic); err != nil {
			p.logger.Error(ctx, "failed to escalate critical activity", err)
		}
	case store.SeverityHigh:
		count, err := p.store.CountRecentSuspiciousActivities(ctx, activity.IPHash, p.now().Add(-escalationWindow), escalationCountCap)
		if err != nil {
			p.logger.Error(ctx, "failed to count recent suspicious activity", err)
			return
		}
		if count < escalationThreshold {
			return
		}
		reason := fmt.Sprintf("%d suspicious activities in 24h", count)
		if err := p.AddToBlacklist(ctx, activity.IPHash, reason, store.SeverityHigh, store.BlacklistSourceAutomatic); err != nil {
			p.logger.Error(ctx, "failed to escalate repeated activity", err)
		}
	}
}

// ScoreConversion rates an identity 0-100 for the verification heuristics.
// Lookup failures score 0 so settlement is never blocked on the fraud store.
func (p *Processor) ScoreConversion(ctx context.Context, ipHash string) int {
	if ipHash == "" {
		return 0
	}

	res, err := p.IsHashBlacklisted(ctx, ipHash)
	if err != nil {
		return 0
	}
	if res.Blacklisted {
		return blacklistedRiskScore
	}

	count, err := p.store.CountRecentSuspiciousActivities(ctx, ipHash, p.now().Add(-escalationWindow), escalationCountCap)
	if err != nil {
		p.logger.Error(ctx, "failed to count suspicious activity for scoring", err)
		return 0
	}
	return min(count*riskPerActivity, maxActivityRisk)
}

// ClearCache drops every cached blacklist lookup
func (p *Processor) ClearCache() {
	p.cache.Clear()
}

func isValidSeverity(severity string) bool {
	switch severity {
	case store.SeverityLow, store.SeverityMedium, store.SeverityHigh, store.SeverityCritical:
		return true
	}
	return false
}
