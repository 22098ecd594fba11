package store

import (
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/recurrence"
	"paisa/internal/storage"
	"paisa/internal/uuid"
)

// ReminderInput carries the validated fields for a new reminder.
type ReminderInput struct {
	Name            string
	Amount          decimal.Decimal
	DueDate         models.Date
	Recurrence      models.Recurrence
	PaymentMethodID string
	LeadDays        int
}

// AddReminder creates a bill reminder, snapshotting the payment method's
// current name.
func (t *Tracker) AddReminder(in ReminderInput) (*models.Reminder, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reminder name is required")
	}
	if in.Amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}
	if in.DueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}
	if !in.Recurrence.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown recurrence")
	}
	if in.LeadDays < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "lead days cannot be negative")
	}

	t.mu.Lock()
	reminder := models.Reminder{
		ID:                uuid.New(),
		Name:              in.Name,
		Amount:            in.Amount,
		DueDate:           in.DueDate,
		Recurrence:        in.Recurrence,
		PaymentMethodID:   in.PaymentMethodID,
		PaymentMethodName: t.methodNameLocked(in.PaymentMethodID),
		LeadDays:          in.LeadDays,
		IsActive:          true,
		CreatedAt:         t.now(),
	}
	t.reminders = append(t.reminders, reminder)
	snapshot := copySlice(t.reminders)
	t.mu.Unlock()

	t.db.Save(storage.KeyReminders, snapshot)
	t.push(storage.KeyReminders, snapshot)
	return &reminder, nil
}

// DeleteReminder removes a reminder by id. Unknown ids are a no-op.
func (t *Tracker) DeleteReminder(id string) {
	t.mu.Lock()
	kept := t.reminders[:0:0]
	for _, r := range t.reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	changed := len(kept) != len(t.reminders)
	t.reminders = kept
	snapshot := copySlice(t.reminders)
	t.mu.Unlock()

	if !changed {
		return
	}
	t.db.Save(storage.KeyReminders, snapshot)
	t.push(storage.KeyReminders, snapshot)
}

// MarkReminderPaid records the bill as paid: it logs an expense dated today
// against the reminder's payment method, then either deletes the reminder
// (one-time) or advances its due date by one recurrence period. Both
// collections are persisted and pushed.
func (t *Tracker) MarkReminderPaid(id string) (*models.Expense, error) {
	t.mu.Lock()
	idx := -1
	for i, r := range t.reminders {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.mu.Unlock()
		return nil, apperrors.ErrReminderNotFound
	}
	reminder := t.reminders[idx]

	expense := models.Expense{
		ID:              uuid.New(),
		Date:            models.DateOf(t.now()),
		Amount:          reminder.Amount,
		Description:     reminder.Name + " - Paid",
		Category:        models.CategoryOther,
		PaymentMethodID: reminder.PaymentMethodID,
		// Carry the reminder's snapshot: the expense records what the
		// method was called when the reminder was set up.
		PaymentMethodName: reminder.PaymentMethodName,
		CreatedAt:         t.now(),
	}
	t.expenses = append([]models.Expense{expense}, t.expenses...)

	if reminder.Recurrence == models.RecurrenceOneTime {
		t.reminders = append(t.reminders[:idx], t.reminders[idx+1:]...)
	} else {
		next, err := recurrence.NextDueDate(reminder.DueDate, reminder.Recurrence)
		if err != nil {
			// Unwind the expense; the reminder data is inconsistent.
			t.expenses = t.expenses[1:]
			t.mu.Unlock()
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		t.reminders[idx].DueDate = next
	}

	expenseSnapshot := copySlice(t.expenses)
	reminderSnapshot := copySlice(t.reminders)
	t.mu.Unlock()

	t.db.Save(storage.KeyExpenses, expenseSnapshot)
	t.db.Save(storage.KeyReminders, reminderSnapshot)
	t.push(storage.KeyExpenses, expenseSnapshot)
	t.push(storage.KeyReminders, reminderSnapshot)
	return &expense, nil
}
