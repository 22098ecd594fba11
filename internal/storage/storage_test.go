package storage

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func setup(t *testing.T) *Store {
	t.Helper()
	s, err := OpenSQLite("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setup(t)

	in := []note{{ID: "1", Body: "chai"}, {ID: "2", Body: "samosa"}}
	s.Save(KeyExpenses, in)

	var out []note
	s.Load(KeyExpenses, &out)
	if len(out) != 2 || out[0].Body != "chai" || out[1].Body != "samosa" {
		t.Errorf("unexpected round trip result %v", out)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := setup(t)

	s.Save(KeyReminders, []note{{ID: "1"}})
	s.Save(KeyReminders, []note{{ID: "2"}, {ID: "3"}})

	var out []note
	s.Load(KeyReminders, &out)
	if len(out) != 2 || out[0].ID != "2" {
		t.Errorf("expected second save to win, got %v", out)
	}
}

func TestLoadMissingKeyLeavesDestEmpty(t *testing.T) {
	s := setup(t)

	out := []note{}
	s.Load(KeyPaymentMethods, &out)
	if len(out) != 0 {
		t.Errorf("expected empty collection, got %v", out)
	}
}

func TestLoadMalformedContentLeavesDestEmpty(t *testing.T) {
	s := setup(t)
	if err := s.set(KeyExpenses, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	out := []note{}
	s.Load(KeyExpenses, &out)
	if len(out) != 0 {
		t.Errorf("expected malformed content discarded, got %v", out)
	}
}

func TestMeta(t *testing.T) {
	s := setup(t)

	if got := s.Meta(KeyLastSyncTime); got != "" {
		t.Errorf("expected empty meta, got %q", got)
	}

	s.SetMeta(KeyLastSyncTime, "2024-06-10T12:00:00Z")
	s.SetMeta(KeyIsConnected, "true")

	if got := s.Meta(KeyLastSyncTime); got != "2024-06-10T12:00:00Z" {
		t.Errorf("unexpected meta value %q", got)
	}
	if got := s.Meta(KeyIsConnected); got != "true" {
		t.Errorf("unexpected meta value %q", got)
	}
}

func TestSaveFailureDoesNotPanic(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	s, err := newStore(db)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close DB: %v", err)
	}

	// Writes against a closed database are logged and dropped.
	s.Save(KeyExpenses, []note{{ID: "1"}})

	var out []note
	s.Load(KeyExpenses, &out)
	if len(out) != 0 {
		t.Errorf("expected nothing readable, got %v", out)
	}
}
