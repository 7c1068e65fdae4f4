package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"refspring/internal/apierrors"
	clickprocessor "refspring/internal/clicks/processor"
	"refspring/internal/observability"
	shortlinkprocessor "refspring/internal/shortlink/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	clicks ClickRecorder
	links  LinkResolver
	logger *observability.Logger
}

func New(clicks ClickRecorder, links LinkResolver, logger *observability.Logger) Handler {
	return Handler{
		clicks: clicks,
		links:  links,
		logger: logger,
	}
}

type TrackClickRequest struct {
	AffiliateID uuid.UUID `json:"affiliate_id" binding:"required"`
	CampaignID  uuid.UUID `json:"campaign_id" binding:"required"`
	TargetURL   string    `json:"target_url" binding:"omitempty,url,max=2048"`
}

// HandleRedirect resolves a short code, records the click and redirects to the target
func (h *Handler) HandleRedirect(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("code")

	link, err := h.links.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, shortlinkprocessor.ErrShortLinkNotFound) {
			renderPage(c, http.StatusNotFound, "Link not found", "This link does not exist.")
			return
		}
		h.logger.Error(ctx, "failed to resolve short link", err)
		renderPage(c, http.StatusServiceUnavailable, "Something went wrong", "Please try again in a moment.")
		return
	}

	h.recordAndRedirect(c, clickprocessor.RecordClickRequest{
		AffiliateID: link.AffiliateID,
		CampaignID:  link.CampaignID,
		TargetURL:   link.TargetURL,
	})
}

// HandleTrackRedirect serves the long-form tracking URL used when no short code exists
func (h *Handler) HandleTrackRedirect(c *gin.Context) {
	campaignID, errC := uuid.Parse(c.Query("campaign"))
	affiliateID, errA := uuid.Parse(c.Query("affiliate"))
	if errC != nil || errA != nil {
		renderPage(c, http.StatusNotFound, "Link not found", "This link is incomplete.")
		return
	}

	h.recordAndRedirect(c, clickprocessor.RecordClickRequest{
		AffiliateID: affiliateID,
		CampaignID:  campaignID,
		TargetURL:   c.Query("url"),
	})
}

func (h *Handler) recordAndRedirect(c *gin.Context, req clickprocessor.RecordClickRequest) {
	ctx := c.Request.Context()
	req.ClientIP = observability.GetRealClientIP(c)
	req.UserAgent = observability.GetRealUserAgent(c)

	res, err := h.clicks.RecordClick(ctx, req)
	switch {
	case err == nil:
	case errors.Is(err, clickprocessor.ErrDuplicateClick):
		// the in-flight twin records the click; this one still goes through
		if res.Blocked {
			break
		}
		if res.TargetURL != "" {
			c.Redirect(http.StatusFound, res.TargetURL)
			return
		}
		renderPage(c, http.StatusConflict, "Already on your way", "Your click is being processed.")
		return
	case errors.Is(err, clickprocessor.ErrCampaignPaused):
		renderPage(c, http.StatusGone, "Campaign paused", "This promotion is no longer running.")
		return
	case errors.Is(err, clickprocessor.ErrAffiliateNotFound),
		errors.Is(err, clickprocessor.ErrCampaignNotFound),
		errors.Is(err, clickprocessor.ErrCampaignMismatch):
		renderPage(c, http.StatusNotFound, "Link not found", "This link does not exist.")
		return
	default:
		renderPage(c, http.StatusServiceUnavailable, "Something went wrong", "Please try again in a moment.")
		return
	}

	if res.Blocked {
		renderPage(c, http.StatusForbidden, "Access blocked", "This link cannot be opened from your network.")
		return
	}
	c.Redirect(http.StatusFound, res.TargetURL)
}

// HandleTrackClick records a click reported by a storefront script
func (h *Handler) HandleTrackClick(c *gin.Context) {
	ctx := c.Request.Context()

	var req TrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	res, err := h.clicks.RecordClick(ctx, clickprocessor.RecordClickRequest{
		AffiliateID: req.AffiliateID,
		CampaignID:  req.CampaignID,
		TargetURL:   req.TargetURL,
		ClientIP:    observability.GetRealClientIP(c),
		UserAgent:   observability.GetRealUserAgent(c),
	})
	if res.Blocked {
		apierrors.Forbidden(c, apierrors.CodeBlocked, "Identity is blocked")
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, clickprocessor.ErrDuplicateClick):
		apierrors.Conflict(c, apierrors.CodeDuplicateClick, "Duplicate click")
	case errors.Is(err, clickprocessor.ErrCampaignPaused):
		apierrors.Gone(c, apierrors.CodeCampaignPaused, "Campaign is paused")
	case errors.Is(err, clickprocessor.ErrAffiliateNotFound):
		apierrors.NotFound(c, apierrors.CodeAffiliateNotFound, "Affiliate not found")
	case errors.Is(err, clickprocessor.ErrCampaignNotFound):
		apierrors.NotFound(c, apierrors.CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, clickprocessor.ErrCampaignMismatch):
		apierrors.BadRequest(c, apierrors.CodeCampaignMismatch, "Affiliate does not belong to campaign")
	case errors.Is(err, clickprocessor.ErrClickStorage):
		apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Click could not be recorded", err)
	default:
		apierrors.InternalError(c, err)
	}
}

func renderPage(c *gin.Context, status int, title, message string) {
	body := fmt.Sprintf("<!doctype html><html><head><title>%s</title></head><body><h1>%s</h1><p>%s</p></body></html>",
		html.EscapeString(title), html.EscapeString(title), html.EscapeString(message))
	c.Data(status, "text/html; charset=utf-8", []byte(body))
	c.Abort()
}
