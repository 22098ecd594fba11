package store

import (
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/storage"
	"paisa/internal/uuid"
)

// PaymentMethodInput carries the validated fields for a new payment method.
type PaymentMethodInput struct {
	Name     string
	Type     models.MethodType
	LastFour string
	Color    string
}

// AddPaymentMethod creates a payment method. The first method ever created
// becomes the default.
func (t *Tracker) AddPaymentMethod(in PaymentMethodInput) (*models.PaymentMethod, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment method name is required")
	}
	if !in.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown payment method type")
	}

	t.mu.Lock()
	method := models.PaymentMethod{
		ID:        uuid.New(),
		Name:      in.Name,
		Type:      in.Type,
		LastFour:  in.LastFour,
		Color:     in.Color,
		IsDefault: len(t.methods) == 0,
		CreatedAt: t.now(),
	}
	t.methods = append(t.methods, method)
	snapshot := copySlice(t.methods)
	t.mu.Unlock()

	t.db.Save(storage.KeyPaymentMethods, snapshot)
	t.push(storage.KeyPaymentMethods, snapshot)
	return &method, nil
}

// DeletePaymentMethod removes a method by id. Expenses referencing the
// deleted method keep their dangling reference and display falls back to the
// name snapshot. Unknown ids are a no-op.
func (t *Tracker) DeletePaymentMethod(id string) {
	t.mu.Lock()
	kept := t.methods[:0:0]
	for _, m := range t.methods {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	changed := len(kept) != len(t.methods)
	t.methods = kept
	snapshot := copySlice(t.methods)
	t.mu.Unlock()

	if !changed {
		return
	}
	t.db.Save(storage.KeyPaymentMethods, snapshot)
	t.push(storage.KeyPaymentMethods, snapshot)
}

// SetDefaultPaymentMethod makes exactly one method the default. An unknown
// id leaves the default set unchanged.
func (t *Tracker) SetDefaultPaymentMethod(id string) {
	t.mu.Lock()
	found := false
	for _, m := range t.methods {
		if m.ID == id {
			found = true
			break
		}
	}
	if !found {
		t.mu.Unlock()
		return
	}
	for i := range t.methods {
		t.methods[i].IsDefault = t.methods[i].ID == id
	}
	snapshot := copySlice(t.methods)
	t.mu.Unlock()

	t.db.Save(storage.KeyPaymentMethods, snapshot)
	t.push(storage.KeyPaymentMethods, snapshot)
}
