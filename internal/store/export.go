package store

import (
	"encoding/json"
	"time"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/storage"
)

// ExportDocument is the single-file backup format: all three collections plus
// the export timestamp.
type ExportDocument struct {
	Expenses       []models.Expense       `json:"expenses"`
	PaymentMethods []models.PaymentMethod `json:"paymentMethods"`
	Reminders      []models.Reminder      `json:"reminders"`
	ExportDate     time.Time              `json:"exportDate"`
}

// importDocument uses pointer slices so an absent key can be told apart from
// an empty collection: absent keys leave the matching collection untouched.
type importDocument struct {
	Expenses       *[]models.Expense       `json:"expenses"`
	PaymentMethods *[]models.PaymentMethod `json:"paymentMethods"`
	Reminders      *[]models.Reminder      `json:"reminders"`
}

// Export snapshots all collections into a backup document.
func (t *Tracker) Export() ExportDocument {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ExportDocument{
		Expenses:       copySlice(t.expenses),
		PaymentMethods: copySlice(t.methods),
		Reminders:      copySlice(t.reminders),
		ExportDate:     t.now(),
	}
}

// Import replaces each collection present in the document wholesale. The
// document is parsed in full before any state is touched, so a malformed
// import never partially mutates the store. Persists everything; the caller
// decides when to trigger a full sync.
func (t *Tracker) Import(data []byte) error {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperrors.Wrap(apperrors.ErrMalformedImport, err)
	}

	t.mu.Lock()
	if doc.Expenses != nil {
		t.expenses = copySlice(*doc.Expenses)
	}
	if doc.PaymentMethods != nil {
		t.methods = copySlice(*doc.PaymentMethods)
	}
	if doc.Reminders != nil {
		t.reminders = copySlice(*doc.Reminders)
	}
	expenses := copySlice(t.expenses)
	methods := copySlice(t.methods)
	reminders := copySlice(t.reminders)
	t.mu.Unlock()

	t.db.Save(storage.KeyExpenses, expenses)
	t.db.Save(storage.KeyPaymentMethods, methods)
	t.db.Save(storage.KeyReminders, reminders)
	return nil
}

// ClearAll wipes every collection and persists the empty state.
func (t *Tracker) ClearAll() {
	t.mu.Lock()
	t.expenses = nil
	t.methods = nil
	t.reminders = nil
	t.mu.Unlock()

	t.db.Save(storage.KeyExpenses, []models.Expense{})
	t.db.Save(storage.KeyPaymentMethods, []models.PaymentMethod{})
	t.db.Save(storage.KeyReminders, []models.Reminder{})
}
