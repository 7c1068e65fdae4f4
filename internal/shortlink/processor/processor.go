package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"

	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

const (
	codeAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
	codeLength      = 6
	maxCodeAttempts = 10
)

var (
	ErrShortLinkNotFound  = errors.New("short link not found")
	ErrShortCodeExhausted = errors.New("could not allocate a unique short code")
	ErrAffiliateNotFound  = errors.New("affiliate not found")
	ErrCampaignMismatch   = errors.New("affiliate does not belong to campaign")
	ErrUnauthorized       = errors.New("unauthorized access to affiliate")
	ErrInvalidTargetURL   = errors.New("invalid target url")
)

type Processor struct {
	store    ShortLinkStore
	logger   *observability.Logger
	generate func() (string, error)
}

func New(store ShortLinkStore, logger *observability.Logger) *Processor {
	return &Processor{
		store:    store,
		logger:   logger,
		generate: randomCode,
	}
}

// CreateShortLinkForOwner checks that ownerID owns the affiliate before creating the link
func (p *Processor) CreateShortLinkForOwner(ctx context.Context, ownerID, campaignID, affiliateID uuid.UUID, targetURL string) (string, error) {
	affiliate, err := p.store.GetAffiliateByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return "", err
	}
	if affiliate.OwnerID != ownerID {
		return "", ErrUnauthorized
	}
	if affiliate.CampaignID != campaignID {
		return "", ErrCampaignMismatch
	}
	return p.CreateShortLink(ctx, campaignID, affiliateID, targetURL)
}

// CreateShortLink returns the short code for a (campaign, affiliate, target)
// triple, reusing the existing one when present. A fresh code is tried at most
// maxCodeAttempts times before ErrShortCodeExhausted.
func (p *Processor) CreateShortLink(ctx context.Context, campaignID, affiliateID uuid.UUID, targetURL string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
	)

	if !isValidTargetURL(targetURL) {
		return "", ErrInvalidTargetURL
	}

	existing, err := p.store.GetShortLinkByTarget(ctx, campaignID, affiliateID, targetURL)
	if err == nil {
		return existing.ShortCode, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up short link", err)
		return "", err
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := p.generate()
		if err != nil {
			p.logger.Error(ctx, "failed to generate short code", err)
			return "", err
		}

		taken, err := p.store.ShortCodeExists(ctx, code)
		if err != nil {
			p.logger.Error(ctx, "failed to check short code", err)
			return "", err
		}
		if taken {
			continue
		}

		link, err := p.store.CreateShortLink(ctx, store.CreateShortLinkParams{
			ShortCode:   code,
			CampaignID:  campaignID,
			AffiliateID: affiliateID,
			TargetURL:   targetURL,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create short link", err)
			return "", err
		}

		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "short_code", Value: link.ShortCode}), "short link created")
		return link.ShortCode, nil
	}

	p.logger.Warn(ctx, "short code attempts exhausted")
	return "", ErrShortCodeExhausted
}

// Resolve maps a code to its link and counts the hit atomically
func (p *Processor) Resolve(ctx context.Context, code string) (store.ShortLink, error) {
	link, err := p.store.IncrementShortLinkClicks(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ShortLink{}, ErrShortLinkNotFound
		}
		p.logger.Error(ctx, "failed to resolve short link", err)
		return store.ShortLink{}, err
	}
	return link, nil
}

// ShortURL renders the public URL of a code
func ShortURL(baseURL, code string) string {
	return fmt.Sprintf("%s/r/%s", baseURL, code)
}

// FallbackURL renders the long-form tracking URL used when no short code can be allocated
func FallbackURL(baseURL string, campaignID, affiliateID uuid.UUID, targetURL string) string {
	q := url.Values{}
	q.Set("campaign", campaignID.String())
	q.Set("affiliate", affiliateID.String())
	q.Set("url", targetURL)
	return fmt.Sprintf("%s/track?%s", baseURL, q.Encode())
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func isValidTargetURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
