package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"refspring/internal/apierrors"
	"refspring/internal/conversions/processor"
	fraudprocessor "refspring/internal/fraud/processor"
	"refspring/internal/money"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	shopifyTopicOrderCreate    = "orders/create"
	shopifyTopicOrderPaid      = "orders/paid"
	shopifyTopicAppUninstalled = "app/uninstalled"

	noteAffiliate = "refspring_affiliate"
	noteCampaign  = "refspring_campaign"

	maxWebhookBody = 1 << 20
)

type shopifyNoteAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type shopifyOrder struct {
	ID             int64                  `json:"id"`
	TotalPrice     string                 `json:"total_price"`
	BrowserIP      string                 `json:"browser_ip"`
	NoteAttributes []shopifyNoteAttribute `json:"note_attributes"`
}

func (o shopifyOrder) attribute(name string) string {
	for _, a := range o.NoteAttributes {
		if a.Name == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// HandleShopifyWebhook verifies the HMAC of a Shopify webhook and dispatches by topic.
// Orders without RefSpring attribution, or attributed to a campaign of another
// shop, are acknowledged and ignored.
func (h *Handler) HandleShopifyWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Unreadable body")
		return
	}

	if !VerifyShopifySignature(h.shopifyWebhookKey, body, c.GetHeader("X-Shopify-Hmac-Sha256")) {
		h.fraud.LogSuspiciousActivity(ctx, fraudprocessor.Activity{
			Type:      store.ActivityTypeInvalidWebhookSignature,
			Severity:  store.SeverityHigh,
			IPHash:    h.fraud.HashIdentity(observability.GetRealClientIP(c)),
			UserAgent: observability.GetRealUserAgent(c),
			Metadata:  store.JSONB{"source": "shopify"},
		})
		apierrors.Unauthorized(c, "Invalid webhook signature")
		return
	}

	topic := c.GetHeader("X-Shopify-Topic")
	shopDomain := c.GetHeader("X-Shopify-Shop-Domain")
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shopify_topic", Value: topic},
		observability.Field{Key: "shop_domain", Value: shopDomain},
	)
	c.Request = c.Request.WithContext(ctx)

	switch topic {
	case shopifyTopicOrderCreate, shopifyTopicOrderPaid:
		if shopDomain == "" {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Missing shop domain")
			return
		}
		h.handleShopifyOrder(c, shopDomain, body)
	case shopifyTopicAppUninstalled:
		if shopDomain == "" {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Missing shop domain")
			return
		}
		paused, err := h.shops.PauseCampaignsByShopDomain(ctx, shopDomain)
		if err != nil {
			apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Campaigns could not be paused", err)
			return
		}
		h.logger.Info(observability.WithFields(ctx, observability.Field{Key: "paused_campaigns", Value: paused}), "shop uninstalled app")
		c.JSON(http.StatusOK, gin.H{"paused_campaigns": paused})
	default:
		h.logger.Info(ctx, "ignoring shopify webhook topic")
		c.JSON(http.StatusOK, gin.H{"ignored": true})
	}
}

func (h *Handler) handleShopifyOrder(c *gin.Context, shopDomain string, body []byte) {
	ctx := c.Request.Context()

	var order shopifyOrder
	if err := json.Unmarshal(body, &order); err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid order payload")
		return
	}

	affiliateID, errA := uuid.Parse(order.attribute(noteAffiliate))
	campaignID, errC := uuid.Parse(order.attribute(noteCampaign))
	if errA != nil || errC != nil {
		h.logger.Info(ctx, "order carries no attribution")
		c.JSON(http.StatusOK, gin.H{"attributed": false})
		return
	}

	amount, err := money.ParseMajorUnits(order.TotalPrice)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidAmount, "Invalid order total")
		return
	}

	res, err := h.settler.SettleConversion(ctx, processor.SettleRequest{
		CampaignID:  campaignID,
		AffiliateID: affiliateID,
		OrderID:     strconv.FormatInt(order.ID, 10),
		Amount:      amount,
		ClientIP:    order.BrowserIP,
		ShopDomain:  shopDomain,
	})
	if err != nil {
		// Shopify retries on 5xx only; attribution errors are acknowledged
		if errors.Is(err, processor.ErrInvalidAmount) ||
			errors.Is(err, processor.ErrCampaignNotFound) ||
			errors.Is(err, processor.ErrAffiliateNotFound) ||
			errors.Is(err, processor.ErrCampaignMismatch) ||
			errors.Is(err, processor.ErrShopMismatch) {
			h.logger.WarnWithError(ctx, "shopify order not settled", err)
			c.JSON(http.StatusOK, gin.H{"attributed": false, "reason": err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attributed":    true,
		"conversion_id": res.Conversion.ID,
		"existing":      res.Existing,
	})
}

// VerifyShopifySignature checks the base64 HMAC-SHA256 of body against the header value
func VerifyShopifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	got, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
