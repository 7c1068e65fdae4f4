package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"

	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/observability"
	"refspring/internal/shortlink/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor     LinkCreator
	publicBaseURL string
	logger        *observability.Logger
}

func New(links LinkCreator, publicBaseURL string, logger *observability.Logger) Handler {
	return Handler{
		processor:     links,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

type CreateShortLinkRequest struct {
	CampaignID  uuid.UUID `json:"campaign_id" binding:"required"`
	AffiliateID uuid.UUID `json:"affiliate_id" binding:"required"`
	TargetURL   string    `json:"target_url" binding:"required,url,max=2048"`
}

type CreateShortLinkResponse struct {
	ShortCode   string `json:"short_code,omitempty"`
	ShortURL    string `json:"short_url,omitempty"`
	FallbackURL string `json:"fallback_url,omitempty"`
}

// HandleCreateShortLink returns the short link for an affiliate and target URL.
// When no code can be allocated the long-form tracking URL is returned instead.
func (h *Handler) HandleCreateShortLink(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	var req CreateShortLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	code, err := h.processor.CreateShortLinkForOwner(ctx, ownerID, req.CampaignID, req.AffiliateID, req.TargetURL)
	if err != nil {
		if errors.Is(err, processor.ErrShortCodeExhausted) {
			h.logger.Warn(ctx, "returning fallback tracking url")
			c.JSON(http.StatusOK, CreateShortLinkResponse{
				FallbackURL: processor.FallbackURL(h.publicBaseURL, req.CampaignID, req.AffiliateID, req.TargetURL),
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateShortLinkResponse{
		ShortCode: code,
		ShortURL:  processor.ShortURL(h.publicBaseURL, code),
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrAffiliateNotFound):
		apierrors.NotFound(c, apierrors.CodeAffiliateNotFound, "Affiliate not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not own this affiliate")
	case errors.Is(err, processor.ErrCampaignMismatch):
		apierrors.BadRequest(c, apierrors.CodeCampaignMismatch, "Affiliate does not belong to campaign")
	case errors.Is(err, processor.ErrInvalidTargetURL):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Target URL must be an absolute http(s) URL")
	default:
		apierrors.InternalError(c, err)
	}
}
