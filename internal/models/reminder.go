package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recurrence is how often a bill reminder repeats.
type Recurrence string

const (
	RecurrenceWeekly     Recurrence = "Weekly"
	RecurrenceBiWeekly   Recurrence = "Bi-weekly"
	RecurrenceMonthly    Recurrence = "Monthly"
	RecurrenceQuarterly  Recurrence = "Quarterly"
	RecurrenceHalfYearly Recurrence = "Half-yearly"
	RecurrenceYearly     Recurrence = "Yearly"

	// RecurrenceOneTime marks a reminder that is deleted once paid instead
	// of being advanced to a next due date.
	RecurrenceOneTime Recurrence = "One-time"
)

// Recurrences lists the repeating periods in display order. One-time is
// handled separately by callers.
var Recurrences = []Recurrence{
	RecurrenceWeekly,
	RecurrenceBiWeekly,
	RecurrenceMonthly,
	RecurrenceQuarterly,
	RecurrenceHalfYearly,
	RecurrenceYearly,
}

// Valid reports whether r is a known recurrence, including one-time.
func (r Recurrence) Valid() bool {
	if r == RecurrenceOneTime {
		return true
	}
	for _, known := range Recurrences {
		if r == known {
			return true
		}
	}
	return false
}

// Reminder is an upcoming bill. LeadDays controls how many days before the
// due date the reminder surfaces on the dashboard.
//
// PaymentMethodName follows the same snapshot rule as Expense.
type Reminder struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           Date            `json:"dueDate"`
	Recurrence        Recurrence      `json:"recurrence"`
	PaymentMethodID   string          `json:"paymentMethod"`
	PaymentMethodName string          `json:"paymentMethodName"`
	LeadDays          int             `json:"reminderDays"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdDate"`
}
