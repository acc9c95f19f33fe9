package client

import (
	"context"
	"path"
	"time"
)

// FileInfo is one entry of a bucket listing
type FileInfo struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	Updated     time.Time `json:"updated"`
	ContentType string    `json:"content_type"`
	IsDir       bool      `json:"isDir,omitempty"`
}

// BaseName is the last path segment of Name
func (f FileInfo) BaseName() string {
	return path.Base(f.Name)
}

// FileStore reads process buckets. Uploads and deletes are not supported.
type FileStore interface {
	// ListFiles returns every object of bucket
	ListFiles(ctx context.Context, bucket string) ([]FileInfo, error)
	// DownloadURL returns a short-lived URL for one object
	DownloadURL(ctx context.Context, bucket, fileID string) (string, error)
}
