package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	folderMIMEType = "application/vnd.google-apps.folder"
	fileMIMEType   = "application/json"
)

// Client is the Google Drive implementation of ObjectStore.
type Client struct {
	svc *drivev3.Service
}

// NewClient builds a Drive client authorized by the given token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := drivev3.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// FindFolder lists non-trashed folders with the given name.
func (c *Client) FindFolder(ctx context.Context, name string) ([]Object, error) {
	q := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", escape(name), folderMIMEType)
	return c.list(ctx, q)
}

// CreateFolder creates a folder and returns its id.
func (c *Client) CreateFolder(ctx context.Context, name string) (string, error) {
	folder, err := c.svc.Files.Create(&drivev3.File{
		Name:     name,
		MimeType: folderMIMEType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}
	return folder.Id, nil
}

// FindFile lists non-trashed files with the given name inside a folder.
func (c *Client) FindFile(ctx context.Context, name, folderID string) ([]Object, error) {
	q := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false", escape(name), escape(folderID))
	return c.list(ctx, q)
}

// CreateFile creates a file with the given body inside a folder and returns
// its id.
func (c *Client) CreateFile(ctx context.Context, name, folderID string, body []byte) (string, error) {
	file, err := c.svc.Files.Create(&drivev3.File{
		Name:     name,
		Parents:  []string{folderID},
		MimeType: fileMIMEType,
	}).Media(bytes.NewReader(body)).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create file %q: %w", name, err)
	}
	return file.Id, nil
}

// Update replaces the entire content of an existing file.
func (c *Client) Update(ctx context.Context, fileID string, body []byte) error {
	_, err := c.svc.Files.Update(fileID, &drivev3.File{}).
		Media(bytes.NewReader(body)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update file %s: %w", fileID, err)
	}
	return nil
}

// Download fetches the entire content of a file.
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileID, err)
	}
	return data, nil
}

func (c *Client) list(ctx context.Context, query string) ([]Object, error) {
	resp, err := c.svc.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id, name)").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	objects := make([]Object, 0, len(resp.Files))
	for _, f := range resp.Files {
		objects = append(objects, Object{ID: f.Id, Name: f.Name})
	}
	return objects, nil
}

// escape sanitizes a value for interpolation into a Drive query string.
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
