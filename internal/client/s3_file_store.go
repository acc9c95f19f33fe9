package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	appConfig "legal-board-api/internal/config"
	"legal-board-api/internal/domain"
	"legal-board-api/internal/metrics"
)

const s3Resource = "s3"

// s3API is the part of the S3 SDK the file store calls
type s3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3FileStore serves process buckets straight from S3 or a MinIO endpoint
type S3FileStore struct {
	client  s3API
	presign func(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
	expiry  time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewS3FileStore creates a FileStore on top of the AWS SDK
func NewS3FileStore(cfg *appConfig.S3Config, logger *zap.Logger, m *metrics.Metrics) (*S3FileStore, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO requires explicit credentials
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for a custom endpoint")
		}
		awsCfg, err = config.LoadDefaultConfig(context.Background(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(context.Background(),
			config.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	presigner := s3.NewPresignClient(client)

	return &S3FileStore{
		client: client,
		presign: func(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
			req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
			}, s3.WithPresignExpires(expiry))
			if err != nil {
				return "", err
			}
			return req.URL, nil
		},
		expiry:  cfg.URLExpiry,
		logger:  logger,
		metrics: m,
	}, nil
}

// ListFiles pages through ListObjectsV2. Keys ending in "/" are reported as directories.
func (s *S3FileStore) ListFiles(ctx context.Context, bucket string) ([]FileInfo, error) {
	start := time.Now()
	files := []FileInfo{}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.record("ListObjectsV2", bucket, start, err)
			s.logger.Error("Failed to list S3 objects",
				zap.String("bucket", bucket),
				zap.Error(err),
			)
			return nil, domain.NewReadError("list_files", s3Resource, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			files = append(files, FileInfo{
				Name:    key,
				Size:    aws.ToInt64(obj.Size),
				Updated: aws.ToTime(obj.LastModified),
				IsDir:   strings.HasSuffix(key, "/"),
			})
		}
	}

	s.record("ListObjectsV2", bucket, start, nil)
	return files, nil
}

// DownloadURL presigns a GET for the object key fileID
func (s *S3FileStore) DownloadURL(ctx context.Context, bucket, fileID string) (string, error) {
	start := time.Now()
	url, err := s.presign(ctx, bucket, fileID, s.expiry)
	s.record("PresignGetObject", bucket, start, err)
	if err != nil {
		s.logger.Error("Failed to presign download",
			zap.String("bucket", bucket),
			zap.String("file_id", fileID),
			zap.Error(err),
		)
		return "", domain.NewReadError("download_url", s3Resource, err)
	}
	return url, nil
}

func (s *S3FileStore) record(op, bucket string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	status := 200
	if err != nil {
		status = 0
	}
	s.metrics.RecordExternalAPICall("s3/"+op+"/buckets/"+bucket, "GET", status, time.Since(start), err)
}
