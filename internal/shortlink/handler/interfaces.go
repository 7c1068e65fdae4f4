package handler

import (
	"context"

	"github.com/google/uuid"
)

// LinkCreator allocates short codes for an owner's affiliates
type LinkCreator interface {
	CreateShortLinkForOwner(ctx context.Context, ownerID, campaignID, affiliateID uuid.UUID, targetURL string) (string, error)
}
