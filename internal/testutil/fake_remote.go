package testutil

import (
	"context"
	"fmt"
	"sync"

	"paisa/internal/drive"
)

// FakeRemote is an in-memory drive.ObjectStore. Zero value is usable.
// Error fields, when set, make the matching operation fail.
type FakeRemote struct {
	mu sync.Mutex

	folders  map[string]string // name -> id
	files    map[string]string // folderID + "/" + name -> id
	contents map[string][]byte // fileID -> body
	nextID   int

	ListErr     error
	CreateErr   error
	UpdateErr   error
	DownloadErr error

	FoldersCreated int
	FilesCreated   int
	Updates        []string // fileIDs updated, in order
}

func (f *FakeRemote) init() {
	if f.folders == nil {
		f.folders = make(map[string]string)
		f.files = make(map[string]string)
		f.contents = make(map[string][]byte)
	}
}

func (f *FakeRemote) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *FakeRemote) FindFolder(ctx context.Context, name string) ([]drive.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.init()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if id, ok := f.folders[name]; ok {
		return []drive.Object{{ID: id, Name: name}}, nil
	}
	return nil, nil
}

func (f *FakeRemote) CreateFolder(ctx context.Context, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.init()
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	id := f.id("folder")
	f.folders[name] = id
	f.FoldersCreated++
	return id, nil
}

func (f *FakeRemote) FindFile(ctx context.Context, name, folderID string) ([]drive.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.init()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if id, ok := f.files[folderID+"/"+name]; ok {
		return []drive.Object{{ID: id, Name: name}}, nil
	}
	return nil, nil
}

func (f *FakeRemote) CreateFile(ctx context.Context, name, folderID string, body []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.init()
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	id := f.id("file")
	f.files[folderID+"/"+name] = id
	f.contents[id] = append([]byte(nil), body...)
	f.FilesCreated++
	return id, nil
}

func (f *FakeRemote) Update(ctx context.Context, fileID string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.init()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.contents[fileID] = append([]byte(nil), body...)
	f.Updates = append(f.Updates, fileID)
	return nil
}

func (f *FakeRemote) Download(ctx context.Context, fileID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.init()
	if f.DownloadErr != nil {
		return nil, f.DownloadErr
	}
	body, ok := f.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("no such file %s", fileID)
	}
	return append([]byte(nil), body...), nil
}

// Content returns the current body of a remote file.
func (f *FakeRemote) Content(fileID string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.contents[fileID]...)
}
