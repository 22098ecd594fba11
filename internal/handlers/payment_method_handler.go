package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/store"
)

// PaymentMethodHandler handles payment-method-related requests.
type PaymentMethodHandler struct {
	tracker *store.Tracker
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(tracker *store.Tracker) *PaymentMethodHandler {
	return &PaymentMethodHandler{tracker: tracker}
}

// CreatePaymentMethodRequest represents the request payload for creating a
// payment method.
type CreatePaymentMethodRequest struct {
	Name     string            `json:"name" binding:"required,max=100"`
	Type     models.MethodType `json:"type" binding:"required,method_type"`
	LastFour string            `json:"lastFour" binding:"omitempty,len=4,numeric"`
	Color    string            `json:"color" binding:"omitempty,hex_color"`
}

// CreatePaymentMethod registers a new payment method.
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var req CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	method, err := h.tracker.AddPaymentMethod(store.PaymentMethodInput{
		Name:     req.Name,
		Type:     req.Type,
		LastFour: req.LastFour,
		Color:    req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, method)
}

// ListPaymentMethods returns all payment methods.
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.PaymentMethods())
}

// SetDefaultPaymentMethod marks the given method as the single default.
// Unknown ids are ignored.
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c *gin.Context) {
	h.tracker.SetDefaultPaymentMethod(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// DeletePaymentMethod removes a payment method. Expenses and reminders that
// referenced it keep their name snapshots. Deleting an unknown id is a no-op.
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	h.tracker.DeletePaymentMethod(c.Param("id"))
	c.Status(http.StatusNoContent)
}
