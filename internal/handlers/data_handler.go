package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/store"
)

// DataHandler handles whole-dataset export, import, and reset.
type DataHandler struct {
	tracker *store.Tracker
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(tracker *store.Tracker) *DataHandler {
	return &DataHandler{tracker: tracker}
}

// maxImportSize caps import payloads at 10 MiB.
const maxImportSize = 10 << 20

// ExportData returns the full dataset as a downloadable backup document.
func (h *DataHandler) ExportData(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="expense_tracker_backup.json"`)
	c.JSON(http.StatusOK, h.tracker.Export())
}

// ImportData replaces the dataset with the uploaded backup document. A
// malformed document leaves the existing data untouched. On success the full
// dataset is pushed to the remote if connected.
func (h *DataHandler) ImportData(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "could not read request body"))
		return
	}

	if err := h.tracker.Import(data); err != nil {
		respondWithError(c, err)
		return
	}

	h.tracker.SyncAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "data imported"})
}

// ClearData deletes every expense, payment method, and reminder, and pushes
// the empty dataset to the remote if connected.
func (h *DataHandler) ClearData(c *gin.Context) {
	h.tracker.ClearAll()
	h.tracker.SyncAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}
