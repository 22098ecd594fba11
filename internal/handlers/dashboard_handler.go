package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"paisa/internal/models"
	"paisa/internal/store"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	tracker *store.Tracker
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(tracker *store.Tracker) *DashboardHandler {
	return &DashboardHandler{tracker: tracker}
}

// DashboardResponse bundles everything the overview screen renders in one
// round trip.
type DashboardResponse struct {
	MonthlyTotal      decimal.Decimal          `json:"monthlyTotal"`
	CategoryBreakdown []store.Breakdown        `json:"categoryBreakdown"`
	MethodBreakdown   []store.Breakdown        `json:"methodBreakdown"`
	RecentExpenses    []models.Expense         `json:"recentExpenses"`
	UpcomingReminders []store.UpcomingReminder `json:"upcomingReminders"`
}

const recentExpenseCount = 10

// GetDashboard returns the monthly total, breakdowns, recent expenses, and
// upcoming reminders for the month of the optional "month" query parameter
// (YYYY-MM), defaulting to the current month.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	anchor, err := monthAnchor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		MonthlyTotal:      h.tracker.MonthlyTotal(anchor),
		CategoryBreakdown: h.tracker.CategoryBreakdown(anchor),
		MethodBreakdown:   h.tracker.MethodBreakdown(anchor),
		RecentExpenses:    h.tracker.RecentExpenses(recentExpenseCount),
		UpcomingReminders: h.tracker.UpcomingReminders(models.Today()),
	})
}

// GetMonthlyExpenses returns the expenses that fall inside the anchor month.
func (h *DashboardHandler) GetMonthlyExpenses(c *gin.Context) {
	anchor, err := monthAnchor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tracker.CurrentMonthExpenses(anchor))
}
