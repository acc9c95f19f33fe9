package service

import (
	"context"

	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/repository"
)

// ResponsibleService lists the parties that board items can be assigned to
type ResponsibleService interface {
	ListActive(ctx context.Context) ([]domain.Responsible, error)
}

type responsibleServiceImpl struct {
	repo   repository.ResponsibleRepository
	logger *zap.Logger
}

// NewResponsibleService creates a new instance of ResponsibleService
func NewResponsibleService(repo repository.ResponsibleRepository, logger *zap.Logger) ResponsibleService {
	return &responsibleServiceImpl{repo: repo, logger: logger}
}

func (s *responsibleServiceImpl) ListActive(ctx context.Context) ([]domain.Responsible, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Failed to list responsables", zap.Error(err))
		return nil, err
	}
	if list == nil {
		list = []domain.Responsible{}
	}
	return list, nil
}
