package handler

import (
	"context"

	conversionprocessor "refspring/internal/conversions/processor"
	fraudprocessor "refspring/internal/fraud/processor"

	"github.com/google/uuid"
)

// Settler settles orders into conversions
type Settler interface {
	SettleConversion(ctx context.Context, req conversionprocessor.SettleRequest) (conversionprocessor.SettleResult, error)
	SettleConversionForOwner(ctx context.Context, ownerID uuid.UUID, req conversionprocessor.SettleRequest) (conversionprocessor.SettleResult, error)
}

// ShopCampaigns pauses the campaigns linked to a shop
type ShopCampaigns interface {
	PauseCampaignsByShopDomain(ctx context.Context, shopDomain string) (int64, error)
}

// SuspiciousActivityLogger records webhook abuse
type SuspiciousActivityLogger interface {
	HashIdentity(rawIP string) string
	LogSuspiciousActivity(ctx context.Context, activity fraudprocessor.Activity)
}
