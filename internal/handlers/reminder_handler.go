package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/store"
)

// ReminderHandler handles bill-reminder-related requests.
type ReminderHandler struct {
	tracker *store.Tracker
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(tracker *store.Tracker) *ReminderHandler {
	return &ReminderHandler{tracker: tracker}
}

// CreateReminderRequest represents the request payload for creating a
// bill reminder.
type CreateReminderRequest struct {
	Name            string            `json:"name" binding:"required,max=100"`
	Amount          decimal.Decimal   `json:"amount" binding:"required"`
	DueDate         models.Date       `json:"dueDate" binding:"required"`
	Recurrence      models.Recurrence `json:"recurrence" binding:"required,recurrence"`
	PaymentMethodID string            `json:"paymentMethod"`
	LeadDays        int               `json:"reminderDays" binding:"gte=0,lte=60"`
}

// CreateReminder registers a new bill reminder.
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reminder, err := h.tracker.AddReminder(store.ReminderInput{
		Name:            req.Name,
		Amount:          req.Amount,
		DueDate:         req.DueDate,
		Recurrence:      req.Recurrence,
		PaymentMethodID: req.PaymentMethodID,
		LeadDays:        req.LeadDays,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// ListReminders returns all reminders annotated with overdue and due-soon
// flags relative to today.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.ReminderStatuses(models.Today()))
}

// UpcomingReminders returns active reminders inside their notification
// window, soonest first.
func (h *ReminderHandler) UpcomingReminders(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.UpcomingReminders(models.Today()))
}

// MarkReminderPaid records an expense for the bill and either advances the
// due date or, for one-time reminders, removes the reminder.
func (h *ReminderHandler) MarkReminderPaid(c *gin.Context) {
	expense, err := h.tracker.MarkReminderPaid(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// DeleteReminder removes a reminder. Deleting an unknown id is a no-op.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	h.tracker.DeleteReminder(c.Param("id"))
	c.Status(http.StatusNoContent)
}
