package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"

	"refspring/internal/apierrors"
	authhandler "refspring/internal/auth/handler"
	"refspring/internal/observability"
	"refspring/internal/verification/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor QueueProcessor
	logger    *observability.Logger
}

func New(processor QueueProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ProcessQueueRequest struct {
	MaxItems     int  `json:"max_items" binding:"omitempty,min=1,max=100"`
	ForceProcess bool `json:"force_process"`
}

// HandleProcessQueue runs one verification pass and returns its summary
func (h *Handler) HandleProcessQueue(c *gin.Context) {
	ctx := c.Request.Context()

	var req ProcessQueueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}
	}

	summary, err := h.processor.ProcessQueue(ctx, processor.ProcessOptions{
		MaxItems:     req.MaxItems,
		ForceProcess: req.ForceProcess,
	})
	if err != nil {
		apierrors.ServiceUnavailable(c, apierrors.CodeStorageUnavailable, "Verification queue unavailable", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

type DecisionRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Notes   string `json:"notes" binding:"max=1000"`
}

// HandleDecision records an owner's manual verdict on a pending conversion
func (h *Handler) HandleDecision(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authhandler.OwnerIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Owner not authenticated")
		return
	}

	conversionID, err := uuid.Parse(c.Param("conversion_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid conversion ID")
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	conversion, err := h.processor.ManualDecision(ctx, ownerID, conversionID, *req.Approve, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversion)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrConversionNotFound):
		apierrors.NotFound(c, apierrors.CodeConversionNotFound, "Conversion not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not own this conversion")
	case errors.Is(err, processor.ErrAlreadyDecided):
		apierrors.Conflict(c, "CONVERSION_ALREADY_DECIDED", "Conversion already decided")
	default:
		apierrors.InternalError(c, err)
	}
}
