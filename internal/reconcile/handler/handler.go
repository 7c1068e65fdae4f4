package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"

	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/observability"
	"refspring/internal/reconcile/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	reconciler Reconciler
	logger     *observability.Logger
}

func New(reconciler Reconciler, logger *observability.Logger) Handler {
	return Handler{
		reconciler: reconciler,
		logger:     logger,
	}
}

type DeleteCampaignResponse struct {
	CampaignID       uuid.UUID  `json:"campaign_id"`
	DistributionID   *uuid.UUID `json:"distribution_id,omitempty"`
	AffiliatesOwed   int        `json:"affiliates_owed"`
	TotalCommissions int64      `json:"total_commissions"`
}

type ConsistencyResponse struct {
	Consistent bool     `json:"consistent"`
	Issues     []string `json:"issues"`
}

// HandleDeleteAffiliate settles and deletes an affiliate
func (h *Handler) HandleDeleteAffiliate(c *gin.Context) {
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

	res, err := h.reconciler.DeleteAffiliate(ctx, ownerID, affiliateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// HandleDeleteCampaign deletes a campaign with all of its dependents
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
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

	res, err := h.reconciler.DeleteCampaign(ctx, ownerID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := DeleteCampaignResponse{
		CampaignID:       campaignID,
		AffiliatesOwed:   len(res.Payments),
		TotalCommissions: res.Payments.Total(),
	}
	if res.Distribution != nil {
		resp.DistributionID = &res.Distribution.ID
	}
	c.JSON(http.StatusOK, resp)
}

// HandleConsistency reports orphaned references
func (h *Handler) HandleConsistency(c *gin.Context) {
	ctx := c.Request.Context()

	issues, err := h.reconciler.AuditConsistency(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConsistencyResponse{
		Consistent: len(issues) == 0,
		Issues:     issues,
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, apierrors.CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not own this resource")
	case errors.Is(err, processor.ErrNotificationFailed):
		apierrors.ServiceUnavailable(c, apierrors.CodeNotificationFailed, "Payment notification failed, nothing was deleted", err)
	case errors.Is(err, processor.ErrSettlementFailed),
		errors.Is(err, processor.ErrCascadeDeleteFailed),
		errors.Is(err, processor.ErrConsistencyAudit):
		apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Storage unavailable", err)
	default:
		apierrors.InternalError(c, err)
	}
}
