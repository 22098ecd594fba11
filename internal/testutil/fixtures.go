// Package testutil provides test helpers: an in-memory storage backend,
// fakes for the sync boundary, and assertions.
package testutil

import (
	"context"
	"sync"
	"testing"

	"paisa/internal/storage"
)

// SetupTestStorage opens a throwaway in-memory SQLite store. The connection
// is closed when the test finishes, which drops the shared memory database.
func SetupTestStorage(t *testing.T) *storage.Store {
	t.Helper()

	s, err := storage.OpenSQLite("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open test storage: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close test storage: %v", err)
		}
	})
	return s
}

// RecordingSyncer implements store.Syncer and records every push so tests
// can assert on auto-sync behavior.
type RecordingSyncer struct {
	mu        sync.Mutex
	connected bool
	pushes    []string
	fullSyncs int
}

// NewRecordingSyncer returns a syncer in the given connection state.
func NewRecordingSyncer(connected bool) *RecordingSyncer {
	return &RecordingSyncer{connected: connected}
}

func (s *RecordingSyncer) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *RecordingSyncer) PushAsync(collection string, records any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushes = append(s.pushes, collection)
}

func (s *RecordingSyncer) FullSync(ctx context.Context, collections map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullSyncs++
}

// Pushes returns the collections pushed so far, in order.
func (s *RecordingSyncer) Pushes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.pushes))
	copy(out, s.pushes)
	return out
}

// FullSyncs returns how many full syncs were requested.
func (s *RecordingSyncer) FullSyncs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullSyncs
}
