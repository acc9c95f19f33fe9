package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/repository"
)

// CreateCommentRequest is the body of a new hearing comment
type CreateCommentRequest struct {
	ResponsibleID *uuid.UUID `json:"responsable_id"`
	Text          string     `json:"comentario_texto"`
}

// CommentService handles the comments of hearings
type CommentService interface {
	List(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error)
	Create(ctx context.Context, hearingID uuid.UUID, req CreateCommentRequest) (*domain.HearingComment, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	hearingRepo repository.ItemRepository[*domain.Hearing]
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo repository.CommentRepository, hearingRepo repository.ItemRepository[*domain.Hearing], logger *zap.Logger) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		hearingRepo: hearingRepo,
		logger:      logger,
	}
}

func (s *commentServiceImpl) List(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error) {
	if _, err := s.hearingRepo.FindByID(ctx, hearingID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByHearing(ctx, hearingID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.HearingComment{}
	}
	return comments, nil
}

func (s *commentServiceImpl) Create(ctx context.Context, hearingID uuid.UUID, req CreateCommentRequest) (*domain.HearingComment, error) {
	comment := &domain.HearingComment{
		HearingID:     hearingID,
		ResponsibleID: req.ResponsibleID,
		Text:          req.Text,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.hearingRepo.FindByID(ctx, hearingID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment",
			zap.String("hearing_id", hearingID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("hearing_id", hearingID.String()),
	)
	return comment, nil
}
