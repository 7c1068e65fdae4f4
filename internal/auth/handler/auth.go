package handler

import (
	"strings"

	"refspring/internal/apierrors"
	"refspring/internal/auth/processor"
	"refspring/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerIDKey is the gin context key the middleware stores the owner id under
const OwnerIDKey = "Owner-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	ownerID, err := h.authProcessor.OwnerID(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		return
	}

	c.Set(OwnerIDKey, ownerID)
	ctx = observability.WithFields(ctx, observability.Field{Key: "owner_id", Value: ownerID.String()})
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// OwnerIDFromContext returns the authenticated owner set by HandleJWTMiddleware
func OwnerIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(OwnerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	ownerID, ok := v.(uuid.UUID)
	return ownerID, ok
}
