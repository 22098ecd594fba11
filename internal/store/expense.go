package store

import (
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/storage"
	"paisa/internal/uuid"
)

// ExpenseInput carries the validated fields for a new expense.
type ExpenseInput struct {
	Date            models.Date
	Amount          decimal.Decimal
	Description     string
	Category        models.Category
	PaymentMethodID string
}

// AddExpense creates an expense, snapshotting the payment method's current
// name. The new expense is prepended so the collection stays most-recent-first.
func (t *Tracker) AddExpense(in ExpenseInput) (*models.Expense, error) {
	if in.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense date is required")
	}
	if in.Amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}
	if !in.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expense category")
	}

	t.mu.Lock()
	expense := models.Expense{
		ID:                uuid.New(),
		Date:              in.Date,
		Amount:            in.Amount,
		Description:       in.Description,
		Category:          in.Category,
		PaymentMethodID:   in.PaymentMethodID,
		PaymentMethodName: t.methodNameLocked(in.PaymentMethodID),
		CreatedAt:         t.now(),
	}
	t.expenses = append([]models.Expense{expense}, t.expenses...)
	snapshot := copySlice(t.expenses)
	t.mu.Unlock()

	t.db.Save(storage.KeyExpenses, snapshot)
	t.push(storage.KeyExpenses, snapshot)
	return &expense, nil
}

// DeleteExpense removes an expense by id. Deleting an id that no longer
// exists is a no-op, so a double-submitted delete stays harmless.
func (t *Tracker) DeleteExpense(id string) {
	t.mu.Lock()
	kept := t.expenses[:0:0]
	for _, e := range t.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	changed := len(kept) != len(t.expenses)
	t.expenses = kept
	snapshot := copySlice(t.expenses)
	t.mu.Unlock()

	if !changed {
		return
	}
	t.db.Save(storage.KeyExpenses, snapshot)
	t.push(storage.KeyExpenses, snapshot)
}

// methodNameLocked resolves a payment method id to its current name, or ""
// when the reference does not resolve. Callers must hold t.mu.
func (t *Tracker) methodNameLocked(id string) string {
	for _, m := range t.methods {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}
