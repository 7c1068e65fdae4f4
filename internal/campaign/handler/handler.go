package handler

import (
	"errors"
	"net/http"

	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/campaign/processor"
	"refspring/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

type Handler struct {
	processor Campaigns
	logger    *observability.Logger
}

func New(campaigns Campaigns, logger *observability.Logger) Handler {
	return Handler{
		processor: campaigns,
		logger:    logger,
	}
}

type CreateCampaignRequest struct {
	Name                  string  `json:"name" binding:"required,max=255"`
	TargetURL             string  `json:"target_url" binding:"required,url"`
	ShopDomain            *string `json:"shop_domain,omitempty" binding:"omitempty,fqdn"`
	DefaultCommissionRate float64 `json:"default_commission_rate" binding:"gte=0,lte=100"`
}

type AttachPaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required,startswith=pm_"`
}

type CreateAffiliateRequest struct {
	Name           string   `json:"name" binding:"required,max=255"`
	Email          string   `json:"email" binding:"required,email"`
	CommissionRate *float64 `json:"commission_rate,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// HandleCreateCampaign creates a draft campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, ownerID, processor.CreateCampaignParams{
		Name:                  req.Name,
		TargetURL:             req.TargetURL,
		ShopDomain:            req.ShopDomain,
		DefaultCommissionRate: req.DefaultCommissionRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists the caller's campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	campaigns, err := h.processor.ListCampaigns(ctx, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign returns one of the caller's campaigns
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}
	campaignID, ok := h.parseCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, ownerID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleAttachPaymentMethod configures payment and activates the campaign
func (h *Handler) HandleAttachPaymentMethod(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}
	campaignID, ok := h.parseCampaignID(c)
	if !ok {
		return
	}

	var req AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.AttachPaymentMethod(ctx, ownerID, campaignID, req.PaymentMethodID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandlePauseCampaign stops a campaign from accepting clicks
func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}
	campaignID, ok := h.parseCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.PauseCampaign(ctx, ownerID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleCreateAffiliate enrolls an affiliate in a campaign
func (h *Handler) HandleCreateAffiliate(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}
	campaignID, ok := h.parseCampaignID(c)
	if !ok {
		return
	}

	var req CreateAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	affiliate, err := h.processor.CreateAffiliate(ctx, ownerID, campaignID, processor.CreateAffiliateParams{
		Name:           req.Name,
		Email:          req.Email,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, affiliate)
}

// HandleListAffiliates lists the affiliates of a campaign
func (h *Handler) HandleListAffiliates(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}
	campaignID, ok := h.parseCampaignID(c)
	if !ok {
		return
	}

	affiliates, err := h.processor.ListAffiliates(ctx, ownerID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, affiliates)
}

func (h *Handler) parseCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, apierrors.CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this campaign")
	case errors.Is(err, processor.ErrInvalidCommissionRate):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Commission rate must be between 0 and 100")
	case errors.Is(err, processor.ErrInvalidTargetURL):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Target URL must be an absolute http(s) URL")
	case errors.Is(err, processor.ErrPaymentMethodNotFound):
		apierrors.BadRequest(c, "PAYMENT_METHOD_NOT_FOUND", "Payment method not found")
	case errors.Is(err, processor.ErrPaymentProvider):
		apierrors.ServiceUnavailable(c, apierrors.CodePaymentProvider, "Payment provider unavailable", err)
	case errors.Is(err, processor.ErrTrackingCodeExhausted):
		apierrors.ServiceUnavailable(c, "TRACKING_CODE_EXHAUSTED", "Could not allocate a tracking code, try again", err)
	default:
		apierrors.InternalError(c, err)
	}
}
