package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"io"
	"net/http"

	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/observability"
	"refspring/internal/payouts/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79/webhook"
)

const maxWebhookBody = 1 << 16

type Handler struct {
	processor     Payouts
	webhookSecret string
	logger        *observability.Logger
}

func New(payouts Payouts, webhookSecret string, logger *observability.Logger) Handler {
	return Handler{
		processor:     payouts,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleCreatePayoutAccount returns an onboarding link for an affiliate's payout account
func (h *Handler) HandleCreatePayoutAccount(c *gin.Context) {
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

	account, err := h.processor.CreatePayoutAccount(ctx, ownerID, affiliateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// HandleTransferDistribution pays out a settled distribution
func (h *Handler) HandleTransferDistribution(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	distributionID, err := uuid.Parse(c.Param("distribution_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid distribution ID")
		return
	}

	result, err := h.processor.TransferDistribution(ctx, ownerID, distributionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleStripeWebhook verifies and applies a Stripe Connect event
func (h *Handler) HandleStripeWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "failed to read request body")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "missing Stripe-Signature header")
		return
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, h.webhookSecret)
	if err != nil {
		h.logger.WarnWithError(ctx, "stripe webhook signature rejected", err)
		apierrors.Unauthorized(c, "invalid webhook signature")
		return
	}

	if err := h.processor.HandleWebhookEvent(ctx, event); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrAffiliateNotFound):
		apierrors.NotFound(c, apierrors.CodeAffiliateNotFound, "Affiliate not found")
	case errors.Is(err, processor.ErrDistributionNotFound):
		apierrors.NotFound(c, apierrors.CodeNotFound, "Distribution not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this resource")
	case errors.Is(err, processor.ErrAlreadyTransferred):
		apierrors.Conflict(c, "ALREADY_TRANSFERRED", "Distribution has already been transferred")
	case errors.Is(err, processor.ErrNoPayableAccounts):
		apierrors.BadRequest(c, "NO_PAYOUT_ACCOUNTS", "No affiliate in this distribution has a payout account")
	case errors.Is(err, processor.ErrMalformedWebhook):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Malformed webhook payload")
	case errors.Is(err, processor.ErrPaymentProvider):
		apierrors.ServiceUnavailable(c, apierrors.CodePaymentProvider, "Payment provider unavailable", err)
	default:
		apierrors.InternalError(c, err)
	}
}
