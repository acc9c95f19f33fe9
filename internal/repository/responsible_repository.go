package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legal-board-api/internal/domain"
)

// ResponsibleRepository reads the responsible parties that can own board items
type ResponsibleRepository interface {
	// ListActive returns parties with estado Activo ordered by nombre
	ListActive(ctx context.Context) ([]domain.Responsible, error)
}

type responsibleRepositoryImpl struct {
	db *gorm.DB
}

// NewResponsibleRepository creates a new instance of ResponsibleRepository
func NewResponsibleRepository(db *gorm.DB) ResponsibleRepository {
	return &responsibleRepositoryImpl{db: db}
}

func (r *responsibleRepositoryImpl) ListActive(ctx context.Context) ([]domain.Responsible, error) {
	var list []domain.Responsible
	if err := r.db.WithContext(ctx).
		Where("estado = ?", domain.ResponsibleStatusActive).
		Order("nombre ASC").
		Find(&list).Error; err != nil {
		return nil, domain.NewReadError("list", domain.Responsible{}.TableName(), err)
	}
	return list, nil
}

// ProcessRepository reads the processes that scope every board
type ProcessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Process, error)
}

type processRepositoryImpl struct {
	db *gorm.DB
}

// NewProcessRepository creates a new instance of ProcessRepository
func NewProcessRepository(db *gorm.DB) ProcessRepository {
	return &processRepositoryImpl{db: db}
}

func (r *processRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Process, error) {
	var p domain.Process
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Table: p.TableName(), ID: id}
		}
		return nil, domain.NewReadError("find", p.TableName(), err)
	}
	return &p, nil
}
