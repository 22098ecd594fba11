// Package sync owns the remote connection lifecycle: authorization, one-time
// provisioning of the Drive folder and per-collection files, and
// whole-snapshot pushes and pulls.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"paisa/internal/drive"
	apperrors "paisa/internal/errors"
	"paisa/internal/logger"
	"paisa/internal/storage"
)

// Collections synced to the remote store, in push order. The settings file
// is provisioned alongside the data files but only written on demand.
var Collections = []string{
	storage.KeyExpenses,
	storage.KeyPaymentMethods,
	storage.KeyReminders,
}

// DefaultFileNames maps collections to their remote file names.
var DefaultFileNames = map[string]string{
	storage.KeyExpenses:       "expenses_data.json",
	storage.KeyPaymentMethods: "payment_methods.json",
	storage.KeyReminders:      "reminders_data.json",
	storage.KeySettings:       "app_settings.json",
}

// StoreFactory builds an ObjectStore from an authorized token source.
// Indirected so tests can inject a fake remote.
type StoreFactory func(ctx context.Context, ts oauth2.TokenSource) (drive.ObjectStore, error)

const pushTimeout = 30 * time.Second

// Engine is the remote sync engine. A single Engine instance exists per
// process; all state transitions go through it.
type Engine struct {
	authorizer drive.Authorizer
	newStore   StoreFactory
	meta       *storage.Store
	folderName string
	fileNames  map[string]string

	mu       sync.Mutex
	status   Status
	remote   drive.ObjectStore
	folderID string
	fileIDs  map[string]string
	lastSync time.Time
}

// NewEngine creates an offline engine. meta persists the connected flag and
// last sync time across restarts.
func NewEngine(authorizer drive.Authorizer, newStore StoreFactory, meta *storage.Store, folderName string) *Engine {
	e := &Engine{
		authorizer: authorizer,
		newStore:   newStore,
		meta:       meta,
		folderName: folderName,
		fileNames:  DefaultFileNames,
		status:     StatusOffline,
		fileIDs:    make(map[string]string),
	}
	if meta != nil {
		if raw := meta.Meta(storage.KeyLastSyncTime); raw != "" {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				e.lastSync = t
			}
		}
	}
	return e
}

// AuthURL returns the consent URL the user visits to start connecting.
func (e *Engine) AuthURL(state string) string {
	return e.authorizer.AuthURL(state)
}

// Connect exchanges the authorization code, provisions the remote folder and
// files, and moves the engine online. Any failure resets the engine to
// offline; folder and file ids already discovered are kept in memory but
// re-verified on the next attempt.
//
// A second Connect while one is in flight returns ErrSyncInProgress.
func (e *Engine) Connect(ctx context.Context, authCode string) error {
	e.mu.Lock()
	if e.status == StatusSyncing {
		e.mu.Unlock()
		return apperrors.ErrSyncInProgress
	}
	e.status = StatusSyncing
	e.mu.Unlock()

	ts, err := e.authorizer.Exchange(ctx, authCode)
	if err != nil {
		e.goOffline()
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Wrap(apperrors.ErrAuthFailed, err)
	}

	remote, err := e.newStore(ctx, ts)
	if err != nil {
		e.goOffline()
		return apperrors.Wrap(apperrors.ErrAuthFailed, err)
	}

	e.mu.Lock()
	e.remote = remote
	e.mu.Unlock()

	if err := e.provision(ctx); err != nil {
		e.goOffline()
		return apperrors.Wrap(apperrors.ErrProvisioning, err)
	}

	e.mu.Lock()
	e.status = StatusOnline
	e.mu.Unlock()

	if e.meta != nil {
		e.meta.SetMeta(storage.KeyIsConnected, strconv.FormatBool(true))
	}
	logger.Named("sync").Infow("connected to remote storage", "folder", e.folderName)
	return nil
}

// Disconnect resets the engine to offline. In-flight remote calls are not
// cancelled; their results are simply no longer trusted.
func (e *Engine) Disconnect() {
	e.goOffline()
	logger.Named("sync").Info("disconnected from remote storage")
}

// Connected reports whether the engine is online.
func (e *Engine) Connected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status == StatusOnline
}

// State returns a snapshot of the connection state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := State{
		Status:   e.status,
		FolderID: e.folderID,
		FileIDs:  make(map[string]string, len(e.fileIDs)),
	}
	for k, v := range e.fileIDs {
		snapshot.FileIDs[k] = v
	}
	if !e.lastSync.IsZero() {
		t := e.lastSync
		snapshot.LastSyncTime = &t
	}
	return snapshot
}

// Push overwrites the remote file for a collection with the serialized
// records. A collection without a provisioned file id is skipped, not an
// error. A failed push is logged and dropped; the engine stays online and
// local and remote diverge until the next successful sync.
func (e *Engine) Push(ctx context.Context, collection string, records any) {
	e.mu.Lock()
	remote := e.remote
	fileID := e.fileIDs[collection]
	connected := e.status == StatusOnline
	e.mu.Unlock()

	if !connected || fileID == "" || remote == nil {
		return
	}

	data, err := json.Marshal(records)
	if err != nil {
		logger.Named("sync").Errorw("serialize failed", "collection", collection, "error", err)
		return
	}

	if err := remote.Update(ctx, fileID, data); err != nil {
		logger.Named("sync").Warnw("push failed", "collection", collection, "error", err)
		return
	}
	logger.Named("sync").Debugw("pushed collection", "collection", collection, "bytes", len(data))
}

// PushAsync pushes in the background. Mutations report success to the user
// regardless of push outcome.
func (e *Engine) PushAsync(collection string, records any) {
	if !e.Connected() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		e.Push(ctx, collection, records)
	}()
}

// Pull fetches the remote snapshot of a collection. Any failure degrades to
// an empty snapshot so a bad pull can never corrupt local state.
func (e *Engine) Pull(ctx context.Context, collection string) []byte {
	empty := []byte("[]")

	e.mu.Lock()
	remote := e.remote
	fileID := e.fileIDs[collection]
	e.mu.Unlock()

	if remote == nil || fileID == "" {
		return empty
	}

	data, err := remote.Download(ctx, fileID)
	if err != nil {
		logger.Named("sync").Warnw("pull failed", "collection", collection, "error", err)
		return empty
	}
	if len(data) == 0 {
		return empty
	}
	return data
}

// FullSync pushes every data collection, stamps the last sync time, and
// writes it to the remote settings file. No-op when not connected.
func (e *Engine) FullSync(ctx context.Context, collections map[string]any) {
	if !e.Connected() {
		return
	}
	for _, name := range Collections {
		records, ok := collections[name]
		if !ok {
			continue
		}
		e.Push(ctx, name, records)
	}
	now := time.Now()
	e.MarkSynced(now)
	e.Push(ctx, storage.KeySettings, map[string]string{
		"lastSyncTime": now.Format(time.RFC3339),
	})
}

// MarkSynced records a successful sync time in memory and in the durable
// store.
func (e *Engine) MarkSynced(t time.Time) {
	e.mu.Lock()
	e.lastSync = t
	e.mu.Unlock()
	if e.meta != nil {
		e.meta.SetMeta(storage.KeyLastSyncTime, t.Format(time.RFC3339))
	}
}

// provision ensures the remote folder and one file per collection exist,
// reusing anything found by name. Safe to re-run: lookups happen before
// creates, so an existing layout is never duplicated. Two racing provisioning
// runs could still double-create; Connect's in-progress guard prevents that
// within a single process.
func (e *Engine) provision(ctx context.Context) error {
	e.mu.Lock()
	remote := e.remote
	e.mu.Unlock()

	folders, err := remote.FindFolder(ctx, e.folderName)
	if err != nil {
		return err
	}

	var folderID string
	if len(folders) > 0 {
		folderID = folders[0].ID
	} else {
		folderID, err = remote.CreateFolder(ctx, e.folderName)
		if err != nil {
			return err
		}
		logger.Named("sync").Infow("created remote folder", "name", e.folderName, "id", folderID)
	}

	fileIDs := make(map[string]string, len(e.fileNames))
	for collection, fileName := range e.fileNames {
		files, err := remote.FindFile(ctx, fileName, folderID)
		if err != nil {
			return err
		}
		if len(files) > 0 {
			fileIDs[collection] = files[0].ID
			continue
		}

		id, err := remote.CreateFile(ctx, fileName, folderID, []byte("[]"))
		if err != nil {
			return err
		}
		fileIDs[collection] = id
		logger.Named("sync").Infow("created remote file", "name", fileName, "id", id)
	}

	e.mu.Lock()
	e.folderID = folderID
	e.fileIDs = fileIDs
	e.mu.Unlock()
	return nil
}

func (e *Engine) goOffline() {
	e.mu.Lock()
	e.status = StatusOffline
	e.mu.Unlock()
	if e.meta != nil {
		e.meta.SetMeta(storage.KeyIsConnected, strconv.FormatBool(false))
	}
}
