package sync

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"paisa/internal/drive"
	apperrors "paisa/internal/errors"
	"paisa/internal/storage"
	"paisa/internal/testutil"
)

type fakeAuthorizer struct {
	err error
}

func (a fakeAuthorizer) AuthURL(state string) string {
	return "https://accounts.example/auth?state=" + state
}

func (a fakeAuthorizer) Exchange(ctx context.Context, code string) (oauth2.TokenSource, error) {
	if a.err != nil {
		return nil, a.err
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}), nil
}

func newTestEngine(t *testing.T, remote *testutil.FakeRemote, authErr error) *Engine {
	t.Helper()
	factory := func(ctx context.Context, ts oauth2.TokenSource) (drive.ObjectStore, error) {
		return remote, nil
	}
	return NewEngine(fakeAuthorizer{err: authErr}, factory, testutil.SetupTestStorage(t), "ExpenseTracker")
}

func TestConnect(t *testing.T) {
	t.Run("provisions_folder_and_files", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)

		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		if !engine.Connected() {
			t.Fatal("expected engine to be online")
		}
		if remote.FoldersCreated != 1 {
			t.Errorf("expected 1 folder created, got %d", remote.FoldersCreated)
		}
		if remote.FilesCreated != len(DefaultFileNames) {
			t.Errorf("expected %d files created, got %d", len(DefaultFileNames), remote.FilesCreated)
		}

		state := engine.State()
		if state.Status != StatusOnline {
			t.Errorf("expected online status, got %s", state.Status)
		}
		for collection := range DefaultFileNames {
			if state.FileIDs[collection] == "" {
				t.Errorf("expected file id for %s", collection)
			}
		}
	})

	t.Run("provisioning_is_idempotent", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		first := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, first.Connect(context.Background(), "code"))

		// A second engine against the same remote reuses everything by
		// name lookup instead of duplicating.
		second := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, second.Connect(context.Background(), "code"))

		if remote.FoldersCreated != 1 {
			t.Errorf("expected folder reused, got %d creations", remote.FoldersCreated)
		}
		if remote.FilesCreated != len(DefaultFileNames) {
			t.Errorf("expected files reused, got %d creations", remote.FilesCreated)
		}
	})

	t.Run("rejects_overlapping_connect", func(t *testing.T) {
		engine := newTestEngine(t, &testutil.FakeRemote{}, nil)
		engine.mu.Lock()
		engine.status = StatusSyncing
		engine.mu.Unlock()

		err := engine.Connect(context.Background(), "code")
		testutil.AssertAppError(t, err, "SYNC_IN_PROGRESS")
	})

	t.Run("auth_denied_resets_to_offline", func(t *testing.T) {
		denied := apperrors.Wrap(apperrors.ErrAuthDenied, errors.New("access_denied"))
		engine := newTestEngine(t, &testutil.FakeRemote{}, denied)

		err := engine.Connect(context.Background(), "code")
		testutil.AssertAppError(t, err, "AUTH_DENIED")
		if engine.Connected() {
			t.Error("expected engine offline after denial")
		}
	})

	t.Run("provisioning_failure_resets_to_offline", func(t *testing.T) {
		remote := &testutil.FakeRemote{ListErr: errors.New("remote unavailable")}
		engine := newTestEngine(t, remote, nil)

		err := engine.Connect(context.Background(), "code")
		testutil.AssertAppError(t, err, "PROVISIONING_FAILED")
		if engine.Connected() {
			t.Error("expected engine offline after provisioning failure")
		}
	})
}

func TestDisconnect(t *testing.T) {
	remote := &testutil.FakeRemote{}
	engine := newTestEngine(t, remote, nil)
	testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

	engine.Disconnect()

	if engine.Connected() {
		t.Fatal("expected engine offline after disconnect")
	}
	// Ids are retained in memory for potential reuse.
	if engine.State().FolderID == "" {
		t.Error("expected folder id retained after disconnect")
	}
}

func TestPush(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}

	t.Run("overwrites_remote_file", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		engine.Push(context.Background(), storage.KeyExpenses, []record{{Name: "chai"}})

		fileID := engine.State().FileIDs[storage.KeyExpenses]
		if got := string(remote.Content(fileID)); !strings.Contains(got, "chai") {
			t.Errorf("expected pushed content, got %s", got)
		}
	})

	t.Run("missing_file_id_is_noop", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		engine.mu.Lock()
		delete(engine.fileIDs, storage.KeyExpenses)
		engine.mu.Unlock()

		engine.Push(context.Background(), storage.KeyExpenses, []record{{Name: "chai"}})
		if len(remote.Updates) != 0 {
			t.Errorf("expected no updates, got %v", remote.Updates)
		}
	})

	t.Run("offline_push_is_noop", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		engine.Push(context.Background(), storage.KeyExpenses, []record{{Name: "chai"}})
		if len(remote.Updates) != 0 {
			t.Errorf("expected no updates while offline, got %v", remote.Updates)
		}
	})

	t.Run("push_failure_stays_online", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		remote.UpdateErr = errors.New("quota exceeded")
		engine.Push(context.Background(), storage.KeyExpenses, []record{{Name: "chai"}})

		if !engine.Connected() {
			t.Error("expected transient push failure to leave engine online")
		}
	})
}

func TestPull(t *testing.T) {
	t.Run("fetches_remote_content", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		engine.Push(context.Background(), storage.KeyReminders, []string{"a", "b"})
		got := engine.Pull(context.Background(), storage.KeyReminders)
		if string(got) != `["a","b"]` {
			t.Errorf("unexpected pull result %s", got)
		}
	})

	t.Run("failure_degrades_to_empty", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		remote.DownloadErr = errors.New("remote unavailable")
		if got := engine.Pull(context.Background(), storage.KeyReminders); string(got) != "[]" {
			t.Errorf("expected empty snapshot, got %s", got)
		}
	})

	t.Run("unprovisioned_collection_is_empty", func(t *testing.T) {
		engine := newTestEngine(t, &testutil.FakeRemote{}, nil)
		if got := engine.Pull(context.Background(), storage.KeyReminders); string(got) != "[]" {
			t.Errorf("expected empty snapshot, got %s", got)
		}
	})
}

func TestFullSync(t *testing.T) {
	collections := map[string]any{
		storage.KeyExpenses:       []string{"e"},
		storage.KeyPaymentMethods: []string{"m"},
		storage.KeyReminders:      []string{"r"},
	}

	t.Run("pushes_all_and_stamps_time", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)
		testutil.AssertNoError(t, engine.Connect(context.Background(), "code"))

		engine.FullSync(context.Background(), collections)

		// Three data collections plus the settings file.
		if len(remote.Updates) != len(Collections)+1 {
			t.Errorf("expected %d pushes, got %d", len(Collections)+1, len(remote.Updates))
		}
		state := engine.State()
		if state.LastSyncTime == nil || time.Since(*state.LastSyncTime) > time.Minute {
			t.Error("expected last sync time to be stamped")
		}
	})

	t.Run("noop_when_offline", func(t *testing.T) {
		remote := &testutil.FakeRemote{}
		engine := newTestEngine(t, remote, nil)

		engine.FullSync(context.Background(), collections)

		if len(remote.Updates) != 0 {
			t.Errorf("expected no pushes while offline, got %d", len(remote.Updates))
		}
		if engine.State().LastSyncTime != nil {
			t.Error("expected no last sync time while offline")
		}
	})
}

func TestLastSyncTimeSurvivesRestart(t *testing.T) {
	meta := testutil.SetupTestStorage(t)
	factory := func(ctx context.Context, ts oauth2.TokenSource) (drive.ObjectStore, error) {
		return &testutil.FakeRemote{}, nil
	}

	first := NewEngine(fakeAuthorizer{}, factory, meta, "ExpenseTracker")
	stamp := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	first.MarkSynced(stamp)

	second := NewEngine(fakeAuthorizer{}, factory, meta, "ExpenseTracker")
	state := second.State()
	if state.LastSyncTime == nil || !state.LastSyncTime.Equal(stamp) {
		t.Errorf("expected persisted last sync time %s, got %v", stamp, state.LastSyncTime)
	}
}
