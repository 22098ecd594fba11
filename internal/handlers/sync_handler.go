package handlers

import (
	"net/http"
	stdsync "sync"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/store"
	"paisa/internal/sync"
	"paisa/internal/uuid"
)

// SyncHandler handles the remote sync lifecycle: connect, OAuth callback,
// disconnect, status, and manual sync.
type SyncHandler struct {
	engine  *sync.Engine
	tracker *store.Tracker

	mu    stdsync.Mutex
	state string
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(engine *sync.Engine, tracker *store.Tracker) *SyncHandler {
	return &SyncHandler{engine: engine, tracker: tracker}
}

// GetStatus returns the current sync state.
func (h *SyncHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.State())
}

// Connect starts the OAuth consent flow and returns the URL the user must
// visit to grant access.
func (h *SyncHandler) Connect(c *gin.Context) {
	state := uuid.New()
	h.mu.Lock()
	h.state = state
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"authUrl": h.engine.AuthURL(state)})
}

// Callback completes the OAuth flow. The provider redirects here with either
// an authorization code or an error. On success the full dataset is pushed to
// the freshly provisioned remote folder.
func (h *SyncHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrAuthDenied, "consent was denied: "+errParam))
		return
	}

	h.mu.Lock()
	expected := h.state
	h.state = ""
	h.mu.Unlock()
	if expected == "" || c.Query("state") != expected {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrAuthDenied, "state mismatch"))
		return
	}

	code := c.Query("code")
	if code == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "missing authorization code"))
		return
	}

	if err := h.engine.Connect(c.Request.Context(), code); err != nil {
		respondWithError(c, err)
		return
	}

	h.tracker.SyncAll(c.Request.Context())
	c.JSON(http.StatusOK, h.engine.State())
}

// Disconnect returns to offline mode. Local data and remote files are left
// in place.
func (h *SyncHandler) Disconnect(c *gin.Context) {
	h.engine.Disconnect()
	c.JSON(http.StatusOK, h.engine.State())
}

// SyncNow pushes every collection to the remote immediately.
func (h *SyncHandler) SyncNow(c *gin.Context) {
	if !h.engine.Connected() {
		respondWithError(c, apperrors.ErrNotConnected)
		return
	}
	h.tracker.SyncAll(c.Request.Context())
	c.JSON(http.StatusOK, h.engine.State())
}
