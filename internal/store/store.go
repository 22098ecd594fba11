// Package store holds the in-memory domain state: expenses, payment methods,
// and reminders. Every mutation persists the affected collections locally and
// issues a best-effort background push when a remote connection is up; the
// mutation's success never depends on either.
package store

import (
	"context"
	"sync"
	"time"

	"paisa/internal/models"
	"paisa/internal/storage"
)

// Persister is the local persistence adapter. Save and Load never fail the
// caller; see the storage package.
type Persister interface {
	Save(collection string, records any)
	Load(collection string, dest any)
}

// Syncer is the remote sync engine surface the store needs. Mutations only
// ever push; connections are never initiated implicitly.
type Syncer interface {
	Connected() bool
	PushAsync(collection string, records any)
	FullSync(ctx context.Context, collections map[string]any)
}

// Tracker is the domain store. All mutations complete synchronously under a
// single lock before the next intent is accepted.
type Tracker struct {
	mu        sync.Mutex
	expenses  []models.Expense
	methods   []models.PaymentMethod
	reminders []models.Reminder

	db     Persister
	syncer Syncer

	// now is swappable in tests.
	now func() time.Time
}

// New creates a Tracker loaded from the persistence adapter. A missing or
// unreadable collection starts empty. syncer may be nil for a purely local
// tracker.
func New(db Persister, syncer Syncer) *Tracker {
	t := &Tracker{
		db:     db,
		syncer: syncer,
		now:    time.Now,
	}
	db.Load(storage.KeyExpenses, &t.expenses)
	db.Load(storage.KeyPaymentMethods, &t.methods)
	db.Load(storage.KeyReminders, &t.reminders)
	return t
}

// SyncAll pushes every collection to the remote store. No-op when offline.
func (t *Tracker) SyncAll(ctx context.Context) {
	if t.syncer == nil {
		return
	}
	t.syncer.FullSync(ctx, t.snapshot())
}

// snapshot copies all collections keyed by their storage names.
func (t *Tracker) snapshot() map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return map[string]any{
		storage.KeyExpenses:       copySlice(t.expenses),
		storage.KeyPaymentMethods: copySlice(t.methods),
		storage.KeyReminders:      copySlice(t.reminders),
	}
}

// push fires a background push of one collection when connected.
func (t *Tracker) push(collection string, records any) {
	if t.syncer == nil || !t.syncer.Connected() {
		return
	}
	t.syncer.PushAsync(collection, records)
}

func copySlice[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
