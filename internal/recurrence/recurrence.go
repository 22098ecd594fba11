// Package recurrence computes the next due date for repeating reminders.
package recurrence

import (
	"fmt"

	"paisa/internal/models"
)

// NextDueDate advances current by one recurrence period.
//
// Day-based periods add a fixed number of days. Month- and year-based periods
// add calendar units and clamp the day-of-month to the length of the target
// month, so Jan 31 + Monthly lands on the last day of February rather than
// overflowing into March.
//
// One-time is not a valid input: a paid one-time reminder is deleted, not
// advanced.
func NextDueDate(current models.Date, period models.Recurrence) (models.Date, error) {
	switch period {
	case models.RecurrenceWeekly:
		return addDays(current, 7), nil
	case models.RecurrenceBiWeekly:
		return addDays(current, 14), nil
	case models.RecurrenceMonthly:
		return addMonths(current, 1), nil
	case models.RecurrenceQuarterly:
		return addMonths(current, 3), nil
	case models.RecurrenceHalfYearly:
		return addMonths(current, 6), nil
	case models.RecurrenceYearly:
		return addMonths(current, 12), nil
	default:
		return models.Date{}, fmt.Errorf("recurrence %q has no next due date", period)
	}
}

func addDays(d models.Date, days int) models.Date {
	return models.DateOf(d.Time().AddDate(0, 0, days))
}

func addMonths(d models.Date, months int) models.Date {
	// Anchor to the first of the month so time.AddDate cannot normalize
	// past the target month, then clamp the day.
	anchor := models.NewDate(d.Year, d.Month, 1).Time().AddDate(0, months, 0)
	y, m, _ := anchor.Date()

	day := d.Day
	if last := models.DaysIn(y, m); day > last {
		day = last
	}
	return models.NewDate(y, m, day)
}
