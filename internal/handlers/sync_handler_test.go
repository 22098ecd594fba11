package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	"paisa/internal/drive"
	"paisa/internal/models"
	"paisa/internal/store"
	"paisa/internal/sync"
	"paisa/internal/testutil"
)

type stubAuthorizer struct {
	exchangeErr error
}

func (a *stubAuthorizer) AuthURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (a *stubAuthorizer) Exchange(_ context.Context, _ string) (oauth2.TokenSource, error) {
	if a.exchangeErr != nil {
		return nil, a.exchangeErr
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test"}), nil
}

func newTestSyncHandler(t *testing.T) (*SyncHandler, *store.Tracker, *testutil.FakeRemote) {
	t.Helper()
	db := testutil.SetupTestStorage(t)
	remote := &testutil.FakeRemote{}
	engine := sync.NewEngine(&stubAuthorizer{}, func(context.Context, oauth2.TokenSource) (drive.ObjectStore, error) {
		return remote, nil
	}, db, "ExpenseTracker")
	tracker := store.New(db, engine)
	return NewSyncHandler(engine, tracker), tracker, remote
}

func setupSyncRouter(handler *SyncHandler) *gin.Engine {
	r := gin.New()
	r.GET("/sync/status", handler.GetStatus)
	r.POST("/sync/connect", handler.Connect)
	r.GET("/sync/callback", handler.Callback)
	r.POST("/sync/disconnect", handler.Disconnect)
	r.POST("/sync/now", handler.SyncNow)
	return r
}

func TestSyncHandler_Lifecycle(t *testing.T) {
	t.Run("starts offline", func(t *testing.T) {
		handler, _, _ := newTestSyncHandler(t)
		r := setupSyncRouter(handler)

		rec := doRequest(r, "GET", "/sync/status", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSON(t, rec)["status"]; got != "offline" {
			t.Errorf("expected offline, got %v", got)
		}
	})

	t.Run("connect returns the consent URL", func(t *testing.T) {
		handler, _, _ := newTestSyncHandler(t)
		r := setupSyncRouter(handler)

		rec := doRequest(r, "POST", "/sync/connect", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		url, _ := parseJSON(t, rec)["authUrl"].(string)
		if url == "" {
			t.Fatal("expected an auth URL")
		}
	})

	t.Run("callback provisions the remote and pushes data", func(t *testing.T) {
		handler, tracker, remote := newTestSyncHandler(t)
		if _, err := tracker.AddExpense(store.ExpenseInput{
			Date:     models.NewDate(2024, 6, 1),
			Amount:   decimal.NewFromInt(10),
			Category: models.CategoryOther,
		}); err != nil {
			t.Fatalf("add expense: %v", err)
		}
		r := setupSyncRouter(handler)

		doRequest(r, "POST", "/sync/connect", "")
		handler.mu.Lock()
		state := handler.state
		handler.mu.Unlock()

		rec := doRequest(r, "GET", "/sync/callback?code=good&state="+state, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["status"] != "online" {
			t.Errorf("expected online, got %v", result["status"])
		}
		if remote.FoldersCreated != 1 {
			t.Errorf("expected 1 folder created, got %d", remote.FoldersCreated)
		}
		if len(remote.Updates) == 0 {
			t.Error("expected the dataset to be pushed after connect")
		}
	})

	t.Run("callback rejects a state mismatch", func(t *testing.T) {
		handler, _, _ := newTestSyncHandler(t)
		r := setupSyncRouter(handler)

		doRequest(r, "POST", "/sync/connect", "")
		rec := doRequest(r, "GET", "/sync/callback?code=good&state=wrong", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "AUTH_DENIED")
	})

	t.Run("callback surfaces a consent denial", func(t *testing.T) {
		handler, _, _ := newTestSyncHandler(t)
		r := setupSyncRouter(handler)

		rec := doRequest(r, "GET", "/sync/callback?error=access_denied", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("sync now requires a connection", func(t *testing.T) {
		handler, _, _ := newTestSyncHandler(t)
		r := setupSyncRouter(handler)

		rec := doRequest(r, "POST", "/sync/now", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_CONNECTED")
	})

	t.Run("disconnect returns to offline", func(t *testing.T) {
		handler, _, _ := newTestSyncHandler(t)
		r := setupSyncRouter(handler)

		doRequest(r, "POST", "/sync/connect", "")
		handler.mu.Lock()
		state := handler.state
		handler.mu.Unlock()
		doRequest(r, "GET", "/sync/callback?code=good&state="+state, "")

		rec := doRequest(r, "POST", "/sync/disconnect", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSON(t, rec)["status"]; got != "offline" {
			t.Errorf("expected offline, got %v", got)
		}
	})
}
