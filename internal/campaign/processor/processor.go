package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"refspring/internal/clients/payments"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

const (
	trackingCodeLength   = 10
	trackingCodeAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
	trackingCodeAttempts = 5
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrUnauthorized          = errors.New("unauthorized access to campaign")
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 100")
	ErrInvalidTargetURL      = errors.New("target url must be an absolute http(s) url")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrPaymentProvider       = errors.New("payment provider unavailable")
	ErrTrackingCodeExhausted = errors.New("could not allocate a unique tracking code")
)

type CampaignProcessor struct {
	store    CampaignStore
	payments PaymentMethods
	logger   *observability.Logger
}

func New(store CampaignStore, payments PaymentMethods, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:    store,
		payments: payments,
		logger:   logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name                  string
	TargetURL             string
	ShopDomain            *string
	DefaultCommissionRate float64
}

// CreateAffiliateParams represents parameters for enrolling an affiliate.
// A nil CommissionRate inherits the campaign default.
type CreateAffiliateParams struct {
	Name           string
	Email          string
	CommissionRate *float64
}

// CreateCampaign creates a draft campaign. It cannot accept clicks until a
// payment method is attached.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, ownerID uuid.UUID, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "owner_id", Value: ownerID.String()})

	if !validRate(params.DefaultCommissionRate) {
		return store.Campaign{}, ErrInvalidCommissionRate
	}
	if !isValidTargetURL(params.TargetURL) {
		return store.Campaign{}, ErrInvalidTargetURL
	}
	if params.ShopDomain != nil {
		domain := strings.ToLower(strings.TrimSpace(*params.ShopDomain))
		params.ShopDomain = &domain
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		OwnerID:               ownerID,
		Name:                  params.Name,
		TargetURL:             params.TargetURL,
		ShopDomain:            params.ShopDomain,
		DefaultCommissionRate: params.DefaultCommissionRate,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()}), "campaign created")
	return campaign, nil
}

// GetCampaign returns a campaign owned by ownerID
func (p *CampaignProcessor) GetCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	if campaign.OwnerID != ownerID {
		return store.Campaign{}, ErrUnauthorized
	}
	return campaign, nil
}

// ListCampaigns lists an owner's campaigns
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, ownerID uuid.UUID) ([]store.Campaign, error) {
	campaigns, err := p.store.GetCampaignsByOwner(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.Campaign{}
	}
	return campaigns, nil
}

// AttachPaymentMethod validates the payment method with the provider, then
// configures payment and activates the campaign.
func (p *CampaignProcessor) AttachPaymentMethod(ctx context.Context, ownerID, campaignID uuid.UUID, paymentMethodID string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if _, err := p.GetCampaign(ctx, ownerID, campaignID); err != nil {
		return store.Campaign{}, err
	}

	if _, err := p.payments.GetPaymentMethod(ctx, paymentMethodID); err != nil {
		if errors.Is(err, payments.ErrPaymentMethodNotFound) {
			return store.Campaign{}, ErrPaymentMethodNotFound
		}
		return store.Campaign{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}

	campaign, err := p.store.AttachCampaignPaymentMethod(ctx, ownerID, campaignID, paymentMethodID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to attach payment method", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign activated")
	return campaign, nil
}

// PauseCampaign stops a campaign from accepting clicks
func (p *CampaignProcessor) PauseCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if _, err := p.GetCampaign(ctx, ownerID, campaignID); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.PauseCampaign(ctx, ownerID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to pause campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign paused")
	return campaign, nil
}

// CreateAffiliate enrolls an affiliate in a campaign with a fresh tracking code
func (p *CampaignProcessor) CreateAffiliate(ctx context.Context, ownerID, campaignID uuid.UUID, params CreateAffiliateParams) (store.Affiliate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.GetCampaign(ctx, ownerID, campaignID)
	if err != nil {
		return store.Affiliate{}, err
	}

	rate := campaign.DefaultCommissionRate
	if params.CommissionRate != nil {
		rate = *params.CommissionRate
	}
	if !validRate(rate) {
		return store.Affiliate{}, ErrInvalidCommissionRate
	}

	for attempt := 0; attempt < trackingCodeAttempts; attempt++ {
		code, err := randomTrackingCode()
		if err != nil {
			return store.Affiliate{}, fmt.Errorf("failed to generate tracking code: %w", err)
		}

		affiliate, err := p.store.CreateAffiliate(ctx, store.CreateAffiliateParams{
			CampaignID:     campaign.ID,
			OwnerID:        ownerID,
			Name:           params.Name,
			Email:          strings.ToLower(strings.TrimSpace(params.Email)),
			CommissionRate: rate,
			TrackingCode:   code,
		})
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			p.logger.Error(ctx, "failed to create affiliate", err)
			return store.Affiliate{}, err
		}

		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliate.ID.String()}), "affiliate created")
		return affiliate, nil
	}

	p.logger.Warn(ctx, "tracking code attempts exhausted")
	return store.Affiliate{}, ErrTrackingCodeExhausted
}

// ListAffiliates lists the affiliates of a campaign owned by ownerID
func (p *CampaignProcessor) ListAffiliates(ctx context.Context, ownerID, campaignID uuid.UUID) ([]store.Affiliate, error) {
	if _, err := p.GetCampaign(ctx, ownerID, campaignID); err != nil {
		return nil, err
	}

	affiliates, err := p.store.GetAffiliatesByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list affiliates", err)
		return nil, err
	}
	if affiliates == nil {
		affiliates = []store.Affiliate{}
	}
	return affiliates, nil
}

func validRate(rate float64) bool {
	return rate >= 0 && rate <= 100
}

func isValidTargetURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func randomTrackingCode() (string, error) {
	buf := make([]byte, trackingCodeLength)
	limit := big.NewInt(int64(len(trackingCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = trackingCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
