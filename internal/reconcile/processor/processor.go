package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"refspring/internal/email"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrUnauthorized        = errors.New("unauthorized access")
	ErrNotificationFailed  = errors.New("payment notification failed")
	ErrSettlementFailed    = errors.New("failed to settle owed commission")
	ErrConsistencyAudit    = errors.New("consistency audit failed")
	ErrCascadeDeleteFailed = errors.New("cascading delete failed")
)

// AffiliateDeletion is the outcome of deleting one affiliate
type AffiliateDeletion struct {
	Deleted      bool                       `json:"deleted"`
	Owed         int64                      `json:"owed"`
	Distribution *store.PaymentDistribution `json:"distribution,omitempty"`
}

type Processor struct {
	store     ReconcileStore
	notifier  PaymentNotifier
	publisher EventPublisher
	logger    *observability.Logger
}

func New(store ReconcileStore, notifier PaymentNotifier, publisher EventPublisher, logger *observability.Logger) *Processor {
	return &Processor{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// DeleteAffiliate settles what the affiliate is owed and then removes it with
// its clicks, links and conversions. Money owed is recorded and the affiliate
// notified before anything is deleted; a failed notification leaves the
// affiliate in place so the call can be retried. Deleting an affiliate that is
// already gone succeeds.
func (p *Processor) DeleteAffiliate(ctx context.Context, ownerID, affiliateID uuid.UUID) (AffiliateDeletion, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
	)

	affiliate, err := p.store.GetAffiliateByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "affiliate already deleted")
			return AffiliateDeletion{}, nil
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return AffiliateDeletion{}, fmt.Errorf("failed to get affiliate: %w", err)
	}
	if affiliate.OwnerID != ownerID {
		return AffiliateDeletion{}, ErrUnauthorized
	}

	owed, err := p.store.GetOwedCommission(ctx, affiliateID)
	if err != nil {
		p.logger.Error(ctx, "failed to compute owed commission", err)
		return AffiliateDeletion{}, fmt.Errorf("%w: %w", ErrSettlementFailed, err)
	}

	result := AffiliateDeletion{Owed: owed.Owed}
	if owed.Owed > 0 {
		dist, err := p.settleAffiliate(ctx, affiliate, owed)
		if err != nil {
			return AffiliateDeletion{}, err
		}
		result.Distribution = &dist
	}

	if err := p.store.DeleteAffiliateCascade(ctx, affiliateID); err != nil {
		p.logger.Error(ctx, "failed to delete affiliate cascade", err)
		return AffiliateDeletion{}, fmt.Errorf("%w: %w", ErrCascadeDeleteFailed, err)
	}
	result.Deleted = true

	if err := p.publisher.PublishAffiliateDeleted(ctx, affiliate.CampaignID, affiliate.ID, owed.Owed); err != nil {
		p.logger.Error(ctx, "failed to publish affiliate deleted event", err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "owed", Value: owed.Owed}), "affiliate deleted")
	return result, nil
}

// settleAffiliate writes the per-affiliate distribution and notifies the
// affiliate unless a previous run already did.
func (p *Processor) settleAffiliate(ctx context.Context, affiliate store.Affiliate, owed store.OwedCommission) (store.PaymentDistribution, error) {
	payment := store.AffiliatePayment{
		AffiliateID: affiliate.ID,
		Name:        affiliate.Name,
		Email:       affiliate.Email,
		Amount:      owed.Owed,
		Conversions: owed.Conversions,
	}
	if affiliate.StripeAccountID != nil {
		payment.StripeAccountID = *affiliate.StripeAccountID
	}
	dist, created, err := p.store.UpsertAffiliateDistribution(ctx, store.CreateDistributionParams{
		CampaignID:        affiliate.CampaignID,
		AffiliateID:       &affiliate.ID,
		PerformedBy:       affiliate.OwnerID,
		TotalCommissions:  owed.Owed,
		AffiliatePayments: store.AffiliatePayments{payment},
		TriggerReason:     store.TriggerAffiliateDeletion,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record payment distribution", err)
		return store.PaymentDistribution{}, fmt.Errorf("%w: %w", ErrSettlementFailed, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "distribution_id", Value: dist.ID.String()})
	if !created && dist.NotifiedAt != nil {
		p.logger.Info(ctx, "affiliate already notified of payment")
		return dist, nil
	}

	campaignName := ""
	if campaign, err := p.store.GetCampaignByID(ctx, affiliate.CampaignID); err == nil {
		campaignName = campaign.Name
	}

	err = p.notifier.SendPaymentNotification(ctx, email.PaymentNotice{
		Distribution: dist,
		Payment:      payment,
		CampaignName: campaignName,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to notify affiliate of payment", err)
		return store.PaymentDistribution{}, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	if err := p.store.MarkDistributionNotified(ctx, dist.ID); err != nil {
		p.logger.WarnWithError(ctx, "failed to mark distribution notified", err)
	}
	return dist, nil
}

// DeleteCampaign removes a campaign and all of its dependents in a single
// transaction, keeping a campaign_deletion distribution as the settlement
// trail. Affiliates owed money are notified after commit.
func (p *Processor) DeleteCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.CampaignDeletion, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignDeletion{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.CampaignDeletion{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.OwnerID != ownerID {
		return store.CampaignDeletion{}, ErrUnauthorized
	}

	result, err := p.store.DeleteCampaignCascade(ctx, ownerID, campaignID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.CampaignDeletion{}, ErrCampaignNotFound
		case errors.Is(err, store.ErrNotOwner):
			return store.CampaignDeletion{}, ErrUnauthorized
		}
		p.logger.Error(ctx, "failed to delete campaign cascade", err)
		return store.CampaignDeletion{}, fmt.Errorf("%w: %w", ErrCascadeDeleteFailed, err)
	}

	if result.Distribution != nil {
		p.notifyCampaignSettlement(ctx, campaign.Name, *result.Distribution, result.Payments)
	}

	total := result.Payments.Total()
	if err := p.publisher.PublishCampaignDeleted(ctx, campaignID, total); err != nil {
		p.logger.Error(ctx, "failed to publish campaign deleted event", err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "affiliates_owed", Value: len(result.Payments)},
		observability.Field{Key: "total_commissions", Value: total},
	), "campaign deleted")
	return result, nil
}

func (p *Processor) notifyCampaignSettlement(ctx context.Context, campaignName string, dist store.PaymentDistribution, payments store.AffiliatePayments) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "distribution_id", Value: dist.ID.String()})

	failed := 0
	for _, payment := range payments {
		err := p.notifier.SendCampaignSettlement(ctx, email.PaymentNotice{
			Distribution: dist,
			Payment:      payment,
			CampaignName: campaignName,
		})
		if err != nil {
			failed++
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: payment.AffiliateID.String()}),
				"failed to notify affiliate of campaign settlement", err)
		}
	}

	if failed > 0 {
		return
	}
	if err := p.store.MarkDistributionNotified(ctx, dist.ID); err != nil {
		p.logger.WarnWithError(ctx, "failed to mark distribution notified", err)
	}
}

// AuditConsistency loads every reference set and runs CheckConsistency on it
func (p *Processor) AuditConsistency(ctx context.Context) ([]string, error) {
	campaigns, err := p.store.ListCampaignRefs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("%w: %w", ErrConsistencyAudit, err)
	}
	affiliates, err := p.store.ListAffiliateRefs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list affiliates", err)
		return nil, fmt.Errorf("%w: %w", ErrConsistencyAudit, err)
	}
	conversions, err := p.store.ListConversionRefs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list conversions", err)
		return nil, fmt.Errorf("%w: %w", ErrConsistencyAudit, err)
	}

	issues := CheckConsistency(campaigns, affiliates, conversions)
	ctx = observability.WithFields(ctx, observability.Field{Key: "issues", Value: len(issues)})
	if len(issues) > 0 {
		p.logger.Warn(ctx, "consistency audit found orphaned references")
	} else {
		p.logger.Info(ctx, "consistency audit clean")
	}
	return issues, nil
}
