package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/store"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	tracker *store.Tracker
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(tracker *store.Tracker) *ExpenseHandler {
	return &ExpenseHandler{tracker: tracker}
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	Date            models.Date     `json:"date" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"max=500"`
	Category        models.Category `json:"category" binding:"required,expense_category"`
	PaymentMethodID string          `json:"paymentMethod"`
}

// CreateExpense records a new expense.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.tracker.AddExpense(store.ExpenseInput{
		Date:            req.Date,
		Amount:          req.Amount,
		Description:     req.Description,
		Category:        req.Category,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns all expenses, most recent first. An optional
// "limit" query parameter caps the result.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		c.JSON(http.StatusOK, h.tracker.RecentExpenses(limit))
		return
	}
	c.JSON(http.StatusOK, h.tracker.Expenses())
}

// DeleteExpense removes an expense. Deleting an unknown id is a no-op.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	h.tracker.DeleteExpense(c.Param("id"))
	c.Status(http.StatusNoContent)
}
