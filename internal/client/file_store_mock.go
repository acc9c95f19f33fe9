package client

import (
	"context"
	"fmt"
	"sync"
)

// MockFileStore implements FileStore in memory for tests and local runs
type MockFileStore struct {
	mu      sync.Mutex
	Buckets map[string][]FileInfo
	// ListCalls counts ListFiles invocations per bucket
	ListCalls map[string]int

	// Optional function overrides for custom test behavior
	ListFilesFunc   func(ctx context.Context, bucket string) ([]FileInfo, error)
	DownloadURLFunc func(ctx context.Context, bucket, fileID string) (string, error)
}

// NewMockFileStore creates an empty mock store
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{
		Buckets:   make(map[string][]FileInfo),
		ListCalls: make(map[string]int),
	}
}

func (m *MockFileStore) ListFiles(ctx context.Context, bucket string) ([]FileInfo, error) {
	m.mu.Lock()
	m.ListCalls[bucket]++
	m.mu.Unlock()

	if m.ListFilesFunc != nil {
		return m.ListFilesFunc(ctx, bucket)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	files := make([]FileInfo, len(m.Buckets[bucket]))
	copy(files, m.Buckets[bucket])
	return files, nil
}

func (m *MockFileStore) DownloadURL(ctx context.Context, bucket, fileID string) (string, error) {
	if m.DownloadURLFunc != nil {
		return m.DownloadURLFunc(ctx, bucket, fileID)
	}
	return fmt.Sprintf("https://files.test/%s/%s?token=mock", bucket, fileID), nil
}
