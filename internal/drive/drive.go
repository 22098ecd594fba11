// Package drive talks to the remote file store that holds synced collection
// snapshots. The concrete backend is Google Drive; consumers depend on the
// ObjectStore interface so tests can substitute a fake.
package drive

import "context"

// Object is a remote file or folder reference.
type Object struct {
	ID   string
	Name string
}

// ObjectStore is the minimal surface the sync engine needs from the remote
// store: name-scoped lookups, creation, whole-file replace, and download.
type ObjectStore interface {
	// FindFolder lists non-trashed folders with the given name.
	FindFolder(ctx context.Context, name string) ([]Object, error)

	// CreateFolder creates a folder and returns its id.
	CreateFolder(ctx context.Context, name string) (string, error)

	// FindFile lists non-trashed files with the given name inside a folder.
	FindFile(ctx context.Context, name, folderID string) ([]Object, error)

	// CreateFile creates a file with the given body inside a folder and
	// returns its id.
	CreateFile(ctx context.Context, name, folderID string, body []byte) (string, error)

	// Update replaces the entire content of an existing file.
	Update(ctx context.Context, fileID string, body []byte) error

	// Download fetches the entire content of a file.
	Download(ctx context.Context, fileID string) ([]byte, error)
}
