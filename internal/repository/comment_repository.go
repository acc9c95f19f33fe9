package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legal-board-api/internal/domain"
)

// CommentRepository stores the comments left on hearings
type CommentRepository interface {
	// ListByHearing returns the comments of a hearing, oldest first
	ListByHearing(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error)
	Create(ctx context.Context, comment *domain.HearingComment) error
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) ListByHearing(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error) {
	var comments []domain.HearingComment
	if err := r.db.WithContext(ctx).
		Where("audiencia_id = ?", hearingID).
		Order("fecha_creacion ASC").
		Find(&comments).Error; err != nil {
		return nil, domain.NewReadError("list", domain.HearingComment{}.TableName(), err)
	}
	return comments, nil
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.HearingComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return domain.NewWriteError("insert", comment.TableName(), err)
	}
	return nil
}
