package store

import (
	"sort"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
)

// Breakdown is one bucket of an aggregated spending view.
type Breakdown struct {
	Label string          `json:"label"`
	Color string          `json:"color,omitempty"`
	Total decimal.Decimal `json:"total"`
}

// UpcomingReminder is a reminder annotated for dashboard display.
type UpcomingReminder struct {
	models.Reminder
	DaysUntilDue int `json:"daysUntilDue"`
}

// ReminderStatus is a reminder annotated for the full list view, which also
// flags overdue items.
type ReminderStatus struct {
	models.Reminder
	DaysUntilDue int  `json:"daysUntilDue"`
	Overdue      bool `json:"overdue"`
	DueSoon      bool `json:"dueSoon"`
}

// Expenses returns a copy of all expenses in insertion order
// (most-recent-first).
func (t *Tracker) Expenses() []models.Expense {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copySlice(t.expenses)
}

// PaymentMethods returns a copy of all payment methods.
func (t *Tracker) PaymentMethods() []models.PaymentMethod {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copySlice(t.methods)
}

// Reminders returns a copy of all reminders.
func (t *Tracker) Reminders() []models.Reminder {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copySlice(t.reminders)
}

// CurrentMonthExpenses returns the expenses dated within the anchor's
// calendar month, inclusive of both month boundaries.
func (t *Tracker) CurrentMonthExpenses(anchor models.Date) []models.Expense {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.Expense, 0)
	for _, e := range t.expenses {
		if e.Date.SameMonth(anchor) {
			out = append(out, e)
		}
	}
	return out
}

// MonthlyTotal sums the anchor month's expenses.
func (t *Tracker) MonthlyTotal(anchor models.Date) decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.CurrentMonthExpenses(anchor) {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryBreakdown totals the anchor month's expenses per category, largest
// first.
func (t *Tracker) CategoryBreakdown(anchor models.Date) []Breakdown {
	totals := make(map[string]decimal.Decimal)
	for _, e := range t.CurrentMonthExpenses(anchor) {
		key := string(e.Category)
		totals[key] = totals[key].Add(e.Amount)
	}
	return sortedBreakdown(totals, nil)
}

// MethodBreakdown totals the anchor month's expenses per payment method,
// largest first. A dangling method reference falls back to the name snapshot
// recorded on the expense.
func (t *Tracker) MethodBreakdown(anchor models.Date) []Breakdown {
	expenses := t.CurrentMonthExpenses(anchor)

	t.mu.Lock()
	live := make(map[string]models.PaymentMethod, len(t.methods))
	for _, m := range t.methods {
		live[m.ID] = m
	}
	t.mu.Unlock()

	totals := make(map[string]decimal.Decimal)
	colors := make(map[string]string)
	for _, e := range expenses {
		label := e.PaymentMethodName
		if m, ok := live[e.PaymentMethodID]; ok {
			label = m.Name
			colors[label] = m.Color
		}
		if label == "" {
			label = "Unknown"
		}
		totals[label] = totals[label].Add(e.Amount)
	}
	return sortedBreakdown(totals, colors)
}

// RecentExpenses returns up to limit expenses sorted by date descending.
func (t *Tracker) RecentExpenses(limit int) []models.Expense {
	expenses := t.Expenses()
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[j].Date.Before(expenses[i].Date)
	})
	if limit > 0 && len(expenses) > limit {
		expenses = expenses[:limit]
	}
	return expenses
}

// UpcomingReminders returns active reminders due within their lead window as
// of today, soonest first. Overdue reminders are excluded here; the list view
// flags them separately.
func (t *Tracker) UpcomingReminders(today models.Date) []UpcomingReminder {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]UpcomingReminder, 0)
	for _, r := range t.reminders {
		if !r.IsActive {
			continue
		}
		days := today.DaysUntil(r.DueDate)
		if days >= 0 && days <= r.LeadDays {
			out = append(out, UpcomingReminder{Reminder: r, DaysUntilDue: days})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysUntilDue < out[j].DaysUntilDue
	})
	return out
}

// ReminderStatuses returns every reminder annotated with due and overdue
// flags for the list view.
func (t *Tracker) ReminderStatuses(today models.Date) []ReminderStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]ReminderStatus, 0, len(t.reminders))
	for _, r := range t.reminders {
		days := today.DaysUntil(r.DueDate)
		out = append(out, ReminderStatus{
			Reminder:     r,
			DaysUntilDue: days,
			Overdue:      days < 0,
			DueSoon:      days >= 0 && days <= r.LeadDays,
		})
	}
	return out
}

func sortedBreakdown(totals map[string]decimal.Decimal, colors map[string]string) []Breakdown {
	out := make([]Breakdown, 0, len(totals))
	for label, total := range totals {
		out = append(out, Breakdown{Label: label, Color: colors[label], Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Label < out[j].Label
	})
	return out
}
