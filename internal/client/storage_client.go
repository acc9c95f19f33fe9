package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/metrics"
)

const storageResource = "storage"

type listFilesResponse struct {
	Files []FileInfo `json:"files"`
}

type downloadResponse struct {
	DownloadURL string `json:"download_url"`
}

// storageClient talks to the cloud storage HTTP API
type storageClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewStorageClient creates a FileStore backed by the cloud storage API at baseURL
func NewStorageClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) FileStore {
	return &storageClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// ListFiles calls GET {base}/buckets/{bucket}/files
func (c *storageClient) ListFiles(ctx context.Context, bucket string) ([]FileInfo, error) {
	endpoint := fmt.Sprintf("%s/buckets/%s/files", c.baseURL, url.PathEscape(bucket))

	var body listFilesResponse
	if err := c.get(ctx, endpoint, &body); err != nil {
		c.logger.Error("Failed to list bucket files",
			zap.String("bucket", bucket),
			zap.Error(err),
		)
		return nil, domain.NewReadError("list_files", storageResource, err)
	}
	if body.Files == nil {
		body.Files = []FileInfo{}
	}
	return body.Files, nil
}

// DownloadURL calls GET {base}/buckets/{bucket}/files/{id}
func (c *storageClient) DownloadURL(ctx context.Context, bucket, fileID string) (string, error) {
	endpoint := fmt.Sprintf("%s/buckets/%s/files/%s", c.baseURL, url.PathEscape(bucket), url.PathEscape(fileID))

	var body downloadResponse
	if err := c.get(ctx, endpoint, &body); err != nil {
		c.logger.Error("Failed to get download URL",
			zap.String("bucket", bucket),
			zap.String("file_id", fileID),
			zap.Error(err),
		)
		return "", domain.NewReadError("download_url", storageResource, err)
	}
	if body.DownloadURL == "" {
		return "", domain.NewReadError("download_url", storageResource, fmt.Errorf("empty download_url for %s", fileID))
	}
	return body.DownloadURL, nil
}

func (c *storageClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(endpoint, http.MethodGet, statusCode, duration, err)
	}

	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Storage API call succeeded",
		zap.String("endpoint", endpoint),
		zap.Duration("duration", duration),
	)
	return nil
}
