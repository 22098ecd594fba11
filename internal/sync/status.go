package sync

import "time"

// Status is the connection state of the sync engine.
type Status string

const (
	// StatusOffline means no remote connection; data lives locally only.
	StatusOffline Status = "offline"

	// StatusSyncing means a connection attempt or provisioning run is in
	// flight.
	StatusSyncing Status = "syncing"

	// StatusOnline means the remote folder and files are provisioned and
	// mutations push automatically.
	StatusOnline Status = "online"
)

// State is a point-in-time snapshot of the engine's connection state,
// exposed to the presentation layer for status display.
type State struct {
	Status       Status            `json:"status"`
	FolderID     string            `json:"folderId,omitempty"`
	FileIDs      map[string]string `json:"fileIds,omitempty"`
	LastSyncTime *time.Time        `json:"lastSyncTime,omitempty"`
}
