package handler

import (
	"context"

	"refspring/internal/reconcile/processor"
	"refspring/internal/store"

	"github.com/google/uuid"
)

// Reconciler deletes entities with their dependents and audits references
type Reconciler interface {
	DeleteAffiliate(ctx context.Context, ownerID, affiliateID uuid.UUID) (processor.AffiliateDeletion, error)
	DeleteCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (store.CampaignDeletion, error)
	AuditConsistency(ctx context.Context) ([]string, error)
}
