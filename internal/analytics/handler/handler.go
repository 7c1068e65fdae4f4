package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"

	"refspring/internal/analytics/processor"
	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor StatsReader
	logger    *observability.Logger
}

func New(stats StatsReader, logger *observability.Logger) Handler {
	return Handler{
		processor: stats,
		logger:    logger,
	}
}

// HandleGetCampaignStats returns click and conversion totals for a campaign
func (h *Handler) HandleGetCampaignStats(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID")
		return
	}

	stats, err := h.processor.CampaignStats(ctx, ownerID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleGetAffiliateStats returns click and conversion totals for an affiliate
func (h *Handler) HandleGetAffiliateStats(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	affiliateID, err := uuid.Parse(c.Param("affiliate_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid affiliate ID")
		return
	}

	stats, err := h.processor.AffiliateStats(ctx, ownerID, affiliateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound), errors.Is(err, processor.ErrUnauthorized):
		apierrors.NotFound(c, apierrors.CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, processor.ErrAffiliateNotFound):
		apierrors.NotFound(c, apierrors.CodeAffiliateNotFound, "Affiliate not found")
	default:
		apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Stats unavailable", err)
	}
}
