package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"

	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/conversions/processor"
	"refspring/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	settler           Settler
	shops             ShopCampaigns
	fraud             SuspiciousActivityLogger
	shopifyWebhookKey string
	logger            *observability.Logger
}

func New(settler Settler, shops ShopCampaigns, fraud SuspiciousActivityLogger, shopifyWebhookKey string, logger *observability.Logger) Handler {
	return Handler{
		settler:           settler,
		shops:             shops,
		fraud:             fraud,
		shopifyWebhookKey: shopifyWebhookKey,
		logger:            logger,
	}
}

type SettleConversionRequest struct {
	CampaignID  uuid.UUID `json:"campaign_id" binding:"required"`
	AffiliateID uuid.UUID `json:"affiliate_id" binding:"required"`
	OrderID     string    `json:"order_id" binding:"required,max=255"`
	Amount      int64     `json:"amount" binding:"required"`
	ClientIP    string    `json:"client_ip" binding:"omitempty,ip"`
}

// HandleSettleConversion settles an order reported by the campaign owner
func (h *Handler) HandleSettleConversion(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	var req SettleConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	res, err := h.settler.SettleConversionForOwner(ctx, ownerID, processor.SettleRequest{
		CampaignID:  req.CampaignID,
		AffiliateID: req.AffiliateID,
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		ClientIP:    req.ClientIP,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Existing {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidAmount):
		apierrors.BadRequest(c, apierrors.CodeInvalidAmount, "Amount must be greater than zero")
	case errors.Is(err, processor.ErrInvalidOrderID):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Order id is required")
	case errors.Is(err, processor.ErrCampaignMismatch):
		apierrors.BadRequest(c, apierrors.CodeCampaignMismatch, "Affiliate does not belong to campaign")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, apierrors.CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, processor.ErrAffiliateNotFound):
		apierrors.NotFound(c, apierrors.CodeAffiliateNotFound, "Affiliate not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not own this campaign")
	default:
		apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Conversion could not be settled", err)
	}
}
