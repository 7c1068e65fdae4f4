package api

import (
	"context"
	"net/http"
	"time"

	analyticsHandler "refspring/internal/analytics/handler"
	authHandler "refspring/internal/auth/handler"
	campaignHandler "refspring/internal/campaign/handler"
	clickHandler "refspring/internal/clicks/handler"
	conversionHandler "refspring/internal/conversions/handler"
	fraudHandler "refspring/internal/fraud/handler"
	payoutHandler "refspring/internal/payouts/handler"
	reconcileHandler "refspring/internal/reconcile/handler"
	shortlinkHandler "refspring/internal/shortlink/handler"
	verificationHandler "refspring/internal/verification/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the API routes to
type Handlers struct {
	Auth         authHandler.Handler
	Campaign     campaignHandler.Handler
	ShortLink    shortlinkHandler.Handler
	Click        clickHandler.Handler
	Conversion   conversionHandler.Handler
	Verification verificationHandler.Handler
	Reconcile    reconcileHandler.Handler
	Stats        analyticsHandler.Handler
	Fraud        fraudHandler.Handler
	Payout       payoutHandler.Handler
	// Readiness lists the backing services /ready pings, by name
	Readiness map[string]Pinger
}

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router       *gin.RouterGroup
	handlers     Handlers
	clickLimiter gin.HandlerFunc
}

// New wires routes onto router. clickLimiter guards the public click endpoints.
func New(router *gin.RouterGroup, handlers Handlers, clickLimiter gin.HandlerFunc) API {
	return API{
		router:       router,
		handlers:     handlers,
		clickLimiter: clickLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	h := a.handlers

	// Public click capture
	a.router.GET("/r/:code", a.clickLimiter, h.Click.HandleRedirect)
	a.router.GET("/track", a.clickLimiter, h.Click.HandleTrackRedirect)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/track/click", a.clickLimiter, h.Click.HandleTrackClick)

		webhookGroup := apiGroup.Group("/webhooks")
		webhookGroup.POST("/shopify", h.Conversion.HandleShopifyWebhook)
		webhookGroup.POST("/stripe", h.Payout.HandleStripeWebhook)
	}

	protectedGroup := apiGroup.Group("/protected", h.Auth.HandleJWTMiddleware)
	{
		campaignGroup := protectedGroup.Group("/campaigns")
		campaignGroup.POST("", h.Campaign.HandleCreateCampaign)
		campaignGroup.GET("", h.Campaign.HandleListCampaigns)
		campaignGroup.GET("/:campaign_id", h.Campaign.HandleGetCampaign)
		campaignGroup.DELETE("/:campaign_id", h.Reconcile.HandleDeleteCampaign)
		campaignGroup.POST("/:campaign_id/payment-method", h.Campaign.HandleAttachPaymentMethod)
		campaignGroup.POST("/:campaign_id/pause", h.Campaign.HandlePauseCampaign)
		campaignGroup.POST("/:campaign_id/affiliates", h.Campaign.HandleCreateAffiliate)
		campaignGroup.GET("/:campaign_id/affiliates", h.Campaign.HandleListAffiliates)
		campaignGroup.GET("/:campaign_id/stats", h.Stats.HandleGetCampaignStats)

		affiliateGroup := protectedGroup.Group("/affiliates")
		affiliateGroup.DELETE("/:affiliate_id", h.Reconcile.HandleDeleteAffiliate)
		affiliateGroup.GET("/:affiliate_id/stats", h.Stats.HandleGetAffiliateStats)
		affiliateGroup.POST("/:affiliate_id/payout-account", h.Payout.HandleCreatePayoutAccount)

		protectedGroup.POST("/short-links", h.ShortLink.HandleCreateShortLink)
		protectedGroup.POST("/conversions", h.Conversion.HandleSettleConversion)

		verificationGroup := protectedGroup.Group("/verification")
		verificationGroup.POST("/process", h.Verification.HandleProcessQueue)
		verificationGroup.POST("/:conversion_id/decision", h.Verification.HandleDecision)

		protectedGroup.POST("/distributions/:distribution_id/transfer", h.Payout.HandleTransferDistribution)
		protectedGroup.GET("/consistency", h.Reconcile.HandleConsistency)

		fraudGroup := protectedGroup.Group("/fraud")
		fraudGroup.POST("/blacklist", h.Fraud.HandleAddToBlacklist)
		fraudGroup.GET("/blacklist/check", h.Fraud.HandleCheckBlacklist)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	a.router.GET("/ready", a.handleReady)
}

// handleReady pings every backing service and answers 503 if any is down
func (a *API) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(a.handlers.Readiness))
	for name, p := range a.handlers.Readiness {
		if err := p.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	c.JSON(status, gin.H{"checks": checks})
}
