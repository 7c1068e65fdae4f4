package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	fraudprocessor "refspring/internal/fraud/processor"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const guardTTL = 2 * time.Second

var (
	ErrDuplicateClick    = errors.New("duplicate click in flight")
	ErrCampaignPaused    = errors.New("campaign is paused")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrCampaignMismatch  = errors.New("affiliate does not belong to campaign")
	ErrClickStorage      = errors.New("failed to record click")
)

type RecordClickRequest struct {
	AffiliateID uuid.UUID
	CampaignID  uuid.UUID
	TargetURL   string
	ClientIP    string
	UserAgent   string
}

// RecordClickResult describes a stored click. Blocked is set when the
// identity is blacklisted; the click is still stored, flagged. A duplicate
// click comes back with ErrDuplicateClick and a result carrying the resolved
// TargetURL and Blocked flag but no ClickID.
type RecordClickResult struct {
	ClickID   uuid.UUID `json:"click_id"`
	TargetURL string    `json:"target_url"`
	Flagged   bool      `json:"flagged"`
	Blocked   bool      `json:"blocked"`
}

type Processor struct {
	store    ClickStore
	fraud    FraudChecker
	guard    ClickGuard
	inflight singleflight.Group
	logger   *observability.Logger
}

// New creates a click recorder. guard may be nil when Redis is disabled; the
// in-process guard still applies.
func New(store ClickStore, fraud FraudChecker, guard ClickGuard, logger *observability.Logger) *Processor {
	return &Processor{
		store:  store,
		fraud:  fraud,
		guard:  guard,
		logger: logger,
	}
}

// RecordClick stores one click for an affiliate. Concurrent calls for the same
// affiliate, campaign and identity collapse to one write; the callers that
// lose get ErrDuplicateClick along with the winner's target and block state.
func (p *Processor) RecordClick(ctx context.Context, req RecordClickRequest) (RecordClickResult, error) {
	ipHash := p.fraud.HashIdentity(req.ClientIP)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: req.CampaignID.String()},
		observability.Field{Key: "affiliate_id", Value: req.AffiliateID.String()},
		observability.Field{Key: "ip_hash", Value: ipHash},
	)

	key := fmt.Sprintf("click:%s:%s:%s", req.AffiliateID, req.CampaignID, ipHash)

	ran := false
	v, err, _ := p.inflight.Do(key, func() (interface{}, error) {
		ran = true
		return p.recordOnce(ctx, key, ipHash, req)
	})
	res, _ := v.(RecordClickResult)
	if !ran {
		if err != nil && !errors.Is(err, ErrDuplicateClick) {
			return RecordClickResult{}, err
		}
		p.logger.Info(ctx, "click collapsed into in-flight duplicate")
		return RecordClickResult{TargetURL: res.TargetURL, Blocked: res.Blocked}, ErrDuplicateClick
	}
	return res, err
}

func (p *Processor) recordOnce(ctx context.Context, key, ipHash string, req RecordClickRequest) (RecordClickResult, error) {
	affiliate, err := p.store.GetAffiliateByID(ctx, req.AffiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RecordClickResult{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return RecordClickResult{}, fmt.Errorf("%w: %w", ErrClickStorage, err)
	}

	campaign, err := p.store.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RecordClickResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return RecordClickResult{}, fmt.Errorf("%w: %w", ErrClickStorage, err)
	}

	if affiliate.CampaignID != campaign.ID {
		p.fraud.LogSuspiciousActivity(ctx, fraudprocessor.Activity{
			Type:      store.ActivityTypeAffiliateCampaignMismatch,
			Severity:  store.SeverityMedium,
			IPHash:    ipHash,
			UserAgent: req.UserAgent,
			Metadata:  store.JSONB{"affiliate_id": affiliate.ID.String(), "campaign_id": campaign.ID.String()},
		})
		return RecordClickResult{}, ErrCampaignMismatch
	}
	if !campaign.IsActive {
		return RecordClickResult{}, ErrCampaignPaused
	}

	targetURL, replaced := resolveTarget(req.TargetURL, campaign.TargetURL)
	if replaced {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "requested_host", Value: hostOf(req.TargetURL)}),
			"click target outside campaign site, using campaign target")
	}

	bl, err := p.fraud.IsHashBlacklisted(ctx, ipHash)
	if err != nil {
		p.logger.WarnWithError(ctx, "blacklist lookup failed, recording click unflagged", err)
	}

	if p.guard != nil {
		acquired, err := p.guard.AcquireGuard(ctx, "refspring:"+key, guardTTL)
		if err != nil {
			p.logger.WarnWithError(ctx, "click guard unavailable, continuing without it", err)
		} else if !acquired {
			p.fraud.LogSuspiciousActivity(ctx, fraudprocessor.Activity{
				Type:      store.ActivityTypeDuplicateClickBurst,
				Severity:  store.SeverityLow,
				IPHash:    ipHash,
				UserAgent: req.UserAgent,
				Metadata:  store.JSONB{"affiliate_id": req.AffiliateID.String(), "campaign_id": req.CampaignID.String()},
			})
			return RecordClickResult{TargetURL: targetURL, Blocked: bl.Blacklisted}, ErrDuplicateClick
		}
	}

	params := store.CreateClickParams{
		CampaignID:  campaign.ID,
		AffiliateID: affiliate.ID,
		TargetURL:   targetURL,
		IPHash:      ipHash,
		UserAgent:   req.UserAgent,
	}
	if bl.Blacklisted {
		reason := "blacklisted: " + bl.Reason
		params.Flagged = true
		params.FlagReason = &reason
	}

	click, err := p.store.CreateClick(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create click", err)
		return RecordClickResult{}, fmt.Errorf("%w: %w", ErrClickStorage, err)
	}

	if bl.Blacklisted {
		p.fraud.LogSuspiciousActivity(ctx, fraudprocessor.Activity{
			Type:      store.ActivityTypeBlacklistedClick,
			Severity:  store.SeverityMedium,
			IPHash:    ipHash,
			UserAgent: req.UserAgent,
			Metadata:  store.JSONB{"click_id": click.ID.String()},
		})
		p.logger.Warn(ctx, "blacklisted identity click recorded as flagged")
	}

	return RecordClickResult{
		ClickID:   click.ID,
		TargetURL: click.TargetURL,
		Flagged:   click.Flagged,
		Blocked:   bl.Blacklisted,
	}, nil
}

// resolveTarget keeps a requested redirect target only when it is an http(s)
// URL on the campaign's host or one of its subdomains. Anything else falls back
// to the campaign target; replaced reports whether that happened.
func resolveTarget(requested, campaignTarget string) (target string, replaced bool) {
	if requested == "" {
		return campaignTarget, false
	}
	u, err := url.Parse(requested)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return campaignTarget, true
	}
	site := hostOf(campaignTarget)
	host := strings.ToLower(u.Hostname())
	if site == "" || (host != site && !strings.HasSuffix(host, "."+site)) {
		return campaignTarget, true
	}
	return requested, false
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
