package apierrors

import (
	"net/http"

	"refspring/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// Kind classifies failures the same way across every handler
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindGone
	KindConflict
	KindRateLimit
	KindInfrastructure
	KindInternal
)

// Status returns the HTTP status code of a kind
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindGone:
		return http.StatusGone
	case KindConflict:
		return http.StatusConflict
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeCampaignNotFound   = "CAMPAIGN_NOT_FOUND"
	CodeAffiliateNotFound  = "AFFILIATE_NOT_FOUND"
	CodeConversionNotFound = "CONVERSION_NOT_FOUND"
	CodeShortLinkNotFound  = "SHORT_LINK_NOT_FOUND"
	CodeCampaignPaused     = "CAMPAIGN_PAUSED"
	CodeCampaignMismatch   = "AFFILIATE_CAMPAIGN_MISMATCH"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeShortCodeExhausted = "SHORT_CODE_EXHAUSTED"
	CodeDuplicateClick     = "DUPLICATE_CLICK"
	CodeBlocked            = "IDENTITY_BLOCKED"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeInvalidSignature   = "INVALID_SIGNATURE"
	CodeNotificationFailed = "NOTIFICATION_FAILED"
	CodePaymentProvider    = "PAYMENT_PROVIDER_ERROR"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Respond writes the error response for a kind and logs correlation info
func Respond(c *gin.Context, kind Kind, code, message string) {
	statusCode := kind.Status()
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, code, message string) {
	Respond(c, KindNotFound, code, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	Respond(c, KindValidation, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	Respond(c, KindUnauthorized, "UNAUTHORIZED", message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	Respond(c, KindForbidden, code, message)
}

// Gone sends a 410 response
func Gone(c *gin.Context, code, message string) {
	Respond(c, KindGone, code, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	Respond(c, KindConflict, code, message)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	Respond(c, KindRateLimit, CodeRateLimited, message)
}

// ServiceUnavailable sends a 503 response and logs the internal error
func ServiceUnavailable(c *gin.Context, code, message string, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "service unavailable", internalErr)
	Respond(c, KindInfrastructure, code, message)
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "internal error", internalErr)
	Respond(c, KindInternal, CodeInternal, "An internal error occurred. Please try again later.")
}
