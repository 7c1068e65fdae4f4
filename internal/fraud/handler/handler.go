package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"

	"refspring/internal/apierrors"
	"refspring/internal/fraud/processor"
	"refspring/internal/observability"
	"refspring/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor Blacklist
	logger    *observability.Logger
}

func New(blacklist Blacklist, logger *observability.Logger) Handler {
	return Handler{
		processor: blacklist,
		logger:    logger,
	}
}

// BlacklistRequest bans either a raw IP (hashed before storage) or an identity hash
type BlacklistRequest struct {
	IP       string `json:"ip" binding:"required_without=IPHash,omitempty,ip"`
	IPHash   string `json:"ip_hash" binding:"omitempty,len=32,hexadecimal"`
	Reason   string `json:"reason" binding:"required,min=1,max=500"`
	Severity string `json:"severity" binding:"required,oneof=low medium high critical"`
}

// HandleAddToBlacklist adds a manual blacklist entry
func (h *Handler) HandleAddToBlacklist(c *gin.Context) {
	ctx := c.Request.Context()

	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ipHash := req.IPHash
	if req.IP != "" {
		ipHash = h.processor.HashIdentity(req.IP)
	}

	if err := h.processor.AddToBlacklist(ctx, ipHash, req.Reason, req.Severity, store.BlacklistSourceManual); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ip_hash": ipHash, "blacklisted": true})
}

// HandleCheckBlacklist reports whether an IP or identity hash is blacklisted
func (h *Handler) HandleCheckBlacklist(c *gin.Context) {
	ctx := c.Request.Context()

	ipHash := c.Query("ip_hash")
	if ip := c.Query("ip"); ip != "" {
		ipHash = h.processor.HashIdentity(ip)
	}
	if ipHash == "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "ip or ip_hash is required")
		return
	}

	res, err := h.processor.IsHashBlacklisted(ctx, ipHash)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ip_hash": ipHash, "result": res})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidSeverity):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid severity")
	case errors.Is(err, processor.ErrEmptyIdentity), errors.Is(err, processor.ErrEmptyReason):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
	default:
		apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Fraud store is temporarily unavailable", err)
	}
}
