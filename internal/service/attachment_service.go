package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legal-board-api/internal/client"
	"legal-board-api/internal/domain"
	"legal-board-api/internal/repository"
)

// AttachedFile is an attachment path resolved against the process bucket
type AttachedFile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	ModDate     time.Time `json:"mod_date"`
	ContentType string    `json:"content_type"`
}

// withAttachments is implemented by items that carry archivos_adjuntos
type withAttachments interface {
	Process() uuid.UUID
	AttachmentPaths() []string
}

// AttachmentService resolves item attachments and download links
type AttachmentService interface {
	ItemFiles(ctx context.Context, processID uuid.UUID, board string, itemID uuid.UUID) ([]AttachedFile, error)
	DownloadURL(ctx context.Context, processID uuid.UUID, fileID string) (string, error)
}

type attachmentServiceImpl struct {
	processes repository.ProcessRepository
	files     client.FileStore
	finders   map[string]func(ctx context.Context, id uuid.UUID) (withAttachments, error)
	logger    *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(
	processes repository.ProcessRepository,
	hearings repository.ItemRepository[*domain.Hearing],
	activities repository.ItemRepository[*domain.Activity],
	files client.FileStore,
	logger *zap.Logger,
) AttachmentService {
	return &attachmentServiceImpl{
		processes: processes,
		files:     files,
		finders: map[string]func(ctx context.Context, id uuid.UUID) (withAttachments, error){
			BoardHearings: func(ctx context.Context, id uuid.UUID) (withAttachments, error) {
				return hearings.FindByID(ctx, id)
			},
			BoardActivities: func(ctx context.Context, id uuid.UUID) (withAttachments, error) {
				return activities.FindByID(ctx, id)
			},
		},
		logger: logger,
	}
}

// ItemFiles lists the bucket once and keeps the entries named by the item.
// Paths missing from the bucket are logged and left out.
func (s *attachmentServiceImpl) ItemFiles(ctx context.Context, processID uuid.UUID, board string, itemID uuid.UUID) ([]AttachedFile, error) {
	find, ok := s.finders[board]
	if !ok {
		return nil, domain.NewValidationError("board", "El tablero no admite archivos adjuntos: "+board)
	}

	item, err := find(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Process() != processID {
		return nil, &domain.NotFoundError{Table: board, ID: itemID}
	}

	paths := item.AttachmentPaths()
	if len(paths) == 0 {
		return []AttachedFile{}, nil
	}

	bucket, err := s.bucket(ctx, processID)
	if err != nil {
		return nil, err
	}
	listing, err := s.files.ListFiles(ctx, bucket)
	if err != nil {
		s.logger.Error("Failed to list bucket",
			zap.String("bucket", bucket),
			zap.Error(err),
		)
		return nil, err
	}

	byName := make(map[string]client.FileInfo, len(listing))
	for _, f := range listing {
		// folder placeholders carry no file
		if f.IsDir || f.Name == "" || strings.HasSuffix(f.Name, "/") {
			continue
		}
		byName[f.Name] = f
	}

	out := make([]AttachedFile, 0, len(paths))
	for _, p := range paths {
		f, ok := byName[p]
		if !ok {
			s.logger.Warn("Attachment not found in bucket",
				zap.String("bucket", bucket),
				zap.String("path", p),
				zap.String("item_id", itemID.String()),
			)
			continue
		}
		out = append(out, AttachedFile{
			ID:          f.Name,
			Name:        f.BaseName(),
			Path:        f.Name,
			Size:        f.Size,
			ModDate:     f.Updated,
			ContentType: f.ContentType,
		})
	}
	return out, nil
}

func (s *attachmentServiceImpl) DownloadURL(ctx context.Context, processID uuid.UUID, fileID string) (string, error) {
	if strings.TrimSpace(fileID) == "" {
		return "", domain.NewValidationError("id", "El identificador del archivo es obligatorio")
	}
	bucket, err := s.bucket(ctx, processID)
	if err != nil {
		return "", err
	}
	return s.files.DownloadURL(ctx, bucket, fileID)
}

func (s *attachmentServiceImpl) bucket(ctx context.Context, processID uuid.UUID) (string, error) {
	p, err := s.processes.FindByID(ctx, processID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(p.BucketPath) == "" {
		return "", domain.NewValidationError("bucket_path", "El proceso no tiene un bucket asignado")
	}
	return p.BucketPath, nil
}
