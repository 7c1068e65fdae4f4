package payments

import (
	"context"
	"errors"
	"fmt"

	"refspring/internal/observability"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/account"
	"github.com/stripe/stripe-go/v79/accountlink"
	"github.com/stripe/stripe-go/v79/paymentmethod"
	"github.com/stripe/stripe-go/v79/transfer"
)

var (
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrProvider              = errors.New("payment provider error")
)

// PaymentMethod is the subset of a provider payment method the campaign flow needs
type PaymentMethod struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Brand string `json:"brand,omitempty"`
	Last4 string `json:"last4,omitempty"`
}

// TransferRequest moves money to a connected account
type TransferRequest struct {
	Amount         int64
	Currency       string
	Destination    string
	TransferGroup  string
	IdempotencyKey string
	Metadata       map[string]string
}

// StripeClient talks to Stripe Connect. Amounts are minor units.
type StripeClient struct {
	logger *observability.Logger
}

func NewStripeClient(secretKey string, logger *observability.Logger) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{logger: logger}
}

// GetPaymentMethod fetches a payment method so it can be validated before a campaign activates
func (c *StripeClient) GetPaymentMethod(ctx context.Context, paymentMethodID string) (PaymentMethod, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_method_id", Value: paymentMethodID})

	params := &stripe.PaymentMethodParams{}
	params.Context = ctx
	pm, err := paymentmethod.Get(paymentMethodID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return PaymentMethod{}, ErrPaymentMethodNotFound
		}
		c.logger.Error(ctx, "failed to get payment method", err)
		return PaymentMethod{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	out := PaymentMethod{ID: pm.ID, Type: string(pm.Type)}
	if pm.Card != nil {
		out.Brand = string(pm.Card.Brand)
		out.Last4 = pm.Card.Last4
	}
	return out, nil
}

// CreateConnectedAccount opens an Express account that can receive transfers
func (c *StripeClient) CreateConnectedAccount(ctx context.Context, email string, metadata map[string]string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	acct, err := account.New(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create connected account", err)
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	return acct.ID, nil
}

// CreateOnboardingLink returns a one-time URL where the account holder finishes onboarding
func (c *StripeClient) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_account_id", Value: accountID})

	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := accountlink.New(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create account link", err)
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	return link.URL, nil
}

// CreateTransfer sends req.Amount to a connected account. The idempotency key
// makes a retried transfer return the original instead of paying twice.
func (c *StripeClient) CreateTransfer(ctx context.Context, req TransferRequest) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_account_id", Value: req.Destination},
		observability.Field{Key: "amount", Value: req.Amount},
	)

	params := &stripe.TransferParams{
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(req.Currency),
		Destination:   stripe.String(req.Destination),
		TransferGroup: stripe.String(req.TransferGroup),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	tr, err := transfer.New(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create transfer", err)
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "transfer_id", Value: tr.ID}), "transfer created")
	return tr.ID, nil
}
