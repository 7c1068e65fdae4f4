package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/stripe/stripe-go/v79"
)

// HandleWebhookEvent applies a verified Stripe event. Events for accounts or
// transfers this service does not know are acknowledged and ignored.
func (p *PayoutProcessor) HandleWebhookEvent(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_event_id", Value: event.ID},
		observability.Field{Key: "stripe_event_type", Value: string(event.Type)},
	)
	if event.Data == nil {
		return ErrMalformedWebhook
	}

	switch event.Type {
	case "account.updated":
		var acct stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
			p.logger.Error(ctx, "failed to unmarshal account", err)
			return fmt.Errorf("%w: %w", ErrMalformedWebhook, err)
		}
		return p.applyPayoutStatus(ctx, acct.ID, accountPayoutStatus(acct))

	case "capability.updated":
		var capability stripe.Capability
		if err := json.Unmarshal(event.Data.Raw, &capability); err != nil {
			p.logger.Error(ctx, "failed to unmarshal capability", err)
			return fmt.Errorf("%w: %w", ErrMalformedWebhook, err)
		}
		if capability.ID != "transfers" {
			return nil
		}
		accountID := event.Account
		if capability.Account != nil && capability.Account.ID != "" {
			accountID = capability.Account.ID
		}
		return p.applyPayoutStatus(ctx, accountID, capabilityPayoutStatus(capability.Status))

	case "transfer.created", "transfer.paid", "transfer.failed", "transfer.reversed":
		var tr stripe.Transfer
		if err := json.Unmarshal(event.Data.Raw, &tr); err != nil {
			p.logger.Error(ctx, "failed to unmarshal transfer", err)
			return fmt.Errorf("%w: %w", ErrMalformedWebhook, err)
		}
		return p.applyTransferStatus(ctx, tr.TransferGroup, transferStatus(string(event.Type)))

	default:
		p.logger.Warn(ctx, fmt.Sprintf("Unhandled event type: %s", event.Type))
	}
	return nil
}

func (p *PayoutProcessor) applyPayoutStatus(ctx context.Context, accountID, status string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_account_id", Value: accountID},
		observability.Field{Key: "payout_status", Value: status},
	)

	affiliate, err := p.store.UpdateAffiliatePayoutStatus(ctx, accountID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "payout status for unknown account ignored")
			return nil
		}
		p.logger.Error(ctx, "failed to update payout status", err)
		return err
	}

	if err := p.publisher.PublishPayoutAccountUpdated(ctx, affiliate); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish payout account update", err)
	}
	p.logger.Info(ctx, "payout status updated")
	return nil
}

func (p *PayoutProcessor) applyTransferStatus(ctx context.Context, group, status string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "transfer_group", Value: group},
		observability.Field{Key: "transfer_status", Value: status},
	)
	if group == "" {
		p.logger.Warn(ctx, "transfer without group ignored")
		return nil
	}

	dist, err := p.store.UpdateTransferStatus(ctx, group, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "transfer for unknown distribution ignored")
			return nil
		}
		p.logger.Error(ctx, "failed to update transfer status", err)
		return err
	}

	if err := p.publisher.PublishPayoutTransferUpdated(ctx, dist); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish transfer update", err)
	}
	p.logger.Info(ctx, "transfer status updated")
	return nil
}

func accountPayoutStatus(acct stripe.Account) string {
	if acct.Requirements != nil && acct.Requirements.DisabledReason != "" {
		return store.PayoutStatusRestricted
	}
	if acct.PayoutsEnabled && acct.Capabilities != nil && acct.Capabilities.Transfers == stripe.AccountCapabilityStatusActive {
		return store.PayoutStatusEnabled
	}
	return store.PayoutStatusOnboarding
}

func capabilityPayoutStatus(status stripe.CapabilityStatus) string {
	switch status {
	case stripe.CapabilityStatusActive:
		return store.PayoutStatusEnabled
	case stripe.CapabilityStatusPending:
		return store.PayoutStatusOnboarding
	default:
		return store.PayoutStatusRestricted
	}
}

func transferStatus(eventType string) string {
	switch eventType {
	case "transfer.paid":
		return store.TransferStatusPaid
	case "transfer.failed", "transfer.reversed":
		return store.TransferStatusFailed
	default:
		return store.TransferStatusCreated
	}
}
