package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"refspring/internal/clients/payments"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

const defaultCurrency = "usd"

var (
	ErrAffiliateNotFound    = errors.New("affiliate not found")
	ErrDistributionNotFound = errors.New("distribution not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAlreadyTransferred   = errors.New("distribution already transferred")
	ErrNoPayableAccounts    = errors.New("no affiliate in the distribution has a payout account")
	ErrPaymentProvider      = errors.New("payment provider error")
	ErrMalformedWebhook     = errors.New("malformed webhook payload")
)

type PayoutProcessor struct {
	store     PayoutStore
	provider  ConnectProvider
	publisher EventPublisher
	webAppURI string
	currency  string
	logger    *observability.Logger
}

func New(store PayoutStore, provider ConnectProvider, publisher EventPublisher, webAppURI string, logger *observability.Logger) PayoutProcessor {
	return PayoutProcessor{
		store:     store,
		provider:  provider,
		publisher: publisher,
		webAppURI: webAppURI,
		currency:  defaultCurrency,
		logger:    logger,
	}
}

// PayoutAccount is what an owner hands to an affiliate to finish onboarding
type PayoutAccount struct {
	AffiliateID     uuid.UUID `json:"affiliate_id"`
	StripeAccountID string    `json:"stripe_account_id"`
	PayoutStatus    string    `json:"payout_status"`
	OnboardingURL   string    `json:"onboarding_url"`
}

// TransferResult reports the transfers issued for one distribution
type TransferResult struct {
	Distribution store.PaymentDistribution `json:"distribution"`
	TransferIDs  []string                  `json:"transfer_ids"`
	Transferred  int64                     `json:"transferred"`
	Unpayable    []uuid.UUID               `json:"unpayable_affiliates"`
}

func transferGroup(distributionID uuid.UUID) string {
	return "distribution_" + distributionID.String()
}

// CreatePayoutAccount opens a connected account for the affiliate, or reuses
// the existing one, and returns a fresh onboarding link.
func (p *PayoutProcessor) CreatePayoutAccount(ctx context.Context, ownerID, affiliateID uuid.UUID) (PayoutAccount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID},
		observability.Field{Key: "affiliate_id", Value: affiliateID},
	)

	affiliate, err := p.store.GetAffiliateByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PayoutAccount{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to load affiliate", err)
		return PayoutAccount{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, affiliate.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PayoutAccount{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to load campaign", err)
		return PayoutAccount{}, err
	}
	if campaign.OwnerID != ownerID {
		return PayoutAccount{}, ErrUnauthorized
	}

	status := affiliate.PayoutStatus
	var accountID string
	if affiliate.StripeAccountID != nil && *affiliate.StripeAccountID != "" {
		accountID = *affiliate.StripeAccountID
	} else {
		accountID, err = p.provider.CreateConnectedAccount(ctx, affiliate.Email, map[string]string{
			"affiliate_id": affiliate.ID.String(),
			"campaign_id":  affiliate.CampaignID.String(),
		})
		if err != nil {
			return PayoutAccount{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
		}

		status = store.PayoutStatusOnboarding
		if err := p.store.SetAffiliateStripeAccount(ctx, affiliate.ID, accountID, status); err != nil {
			p.logger.Error(ctx, "failed to save connected account", err)
			return PayoutAccount{}, err
		}
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "stripe_account_id", Value: accountID}), "connected account created")
	}

	base := fmt.Sprintf("%s/campaigns/%s/affiliates/%s/payouts", p.webAppURI, affiliate.CampaignID, affiliate.ID)
	link, err := p.provider.CreateOnboardingLink(ctx, accountID, base+"?refresh=1", base)
	if err != nil {
		return PayoutAccount{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}

	return PayoutAccount{
		AffiliateID:     affiliate.ID,
		StripeAccountID: accountID,
		PayoutStatus:    status,
		OnboardingURL:   link,
	}, nil
}

// TransferDistribution pays each affiliate in a distribution through one
// transfer per payment. Transfers share a group so provider events can be
// traced back to the distribution, and carry idempotency keys so a retry
// after a partial failure does not pay anyone twice.
func (p *PayoutProcessor) TransferDistribution(ctx context.Context, ownerID, distributionID uuid.UUID) (TransferResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID},
		observability.Field{Key: "distribution_id", Value: distributionID},
	)

	dist, err := p.store.GetDistributionByID(ctx, distributionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TransferResult{}, ErrDistributionNotFound
		}
		p.logger.Error(ctx, "failed to load distribution", err)
		return TransferResult{}, err
	}
	if dist.PerformedBy != ownerID {
		return TransferResult{}, ErrUnauthorized
	}
	if dist.TransferStatus == store.TransferStatusCreated || dist.TransferStatus == store.TransferStatusPaid {
		return TransferResult{}, ErrAlreadyTransferred
	}

	group := transferGroup(dist.ID)
	result := TransferResult{TransferIDs: []string{}, Unpayable: []uuid.UUID{}}
	for _, payment := range dist.AffiliatePayments {
		if payment.Amount <= 0 {
			continue
		}
		if payment.StripeAccountID == "" {
			result.Unpayable = append(result.Unpayable, payment.AffiliateID)
			continue
		}

		transferID, err := p.provider.CreateTransfer(ctx, payments.TransferRequest{
			Amount:         payment.Amount,
			Currency:       p.currency,
			Destination:    payment.StripeAccountID,
			TransferGroup:  group,
			IdempotencyKey: fmt.Sprintf("%s:%s", dist.ID, payment.AffiliateID),
			Metadata: map[string]string{
				"distribution_id": dist.ID.String(),
				"affiliate_id":    payment.AffiliateID.String(),
			},
		})
		if err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: payment.AffiliateID}), "transfer failed", err)
			if markErr := p.store.SetDistributionTransfer(ctx, dist.ID, group, store.TransferStatusFailed); markErr != nil {
				p.logger.Error(ctx, "failed to mark distribution transfer failed", markErr)
			}
			return TransferResult{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
		}
		result.TransferIDs = append(result.TransferIDs, transferID)
		result.Transferred += payment.Amount
	}

	if len(result.TransferIDs) == 0 {
		return TransferResult{}, ErrNoPayableAccounts
	}

	if err := p.store.SetDistributionTransfer(ctx, dist.ID, group, store.TransferStatusCreated); err != nil {
		p.logger.Error(ctx, "failed to record distribution transfer", err)
		return TransferResult{}, err
	}
	dist.TransferID = &group
	dist.TransferStatus = store.TransferStatusCreated
	result.Distribution = dist

	if len(result.Unpayable) > 0 {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "unpayable", Value: len(result.Unpayable)}),
			"some affiliates have no payout account")
	}
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "transferred", Value: result.Transferred}), "distribution transferred")
	return result, nil
}
