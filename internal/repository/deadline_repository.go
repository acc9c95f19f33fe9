package repository

import (
	"context"

	"gorm.io/gorm"

	"legal-board-api/internal/domain"
)

// DeadlineRepository adds the expiry query used by the deadline sweep
type DeadlineRepository interface {
	ItemRepository[*domain.Deadline]
	// FindExpired returns unfinished deadlines whose end date is today or earlier
	FindExpired(ctx context.Context, today domain.Day) ([]*domain.Deadline, error)
}

type deadlineRepositoryImpl struct {
	*itemRepositoryImpl[domain.Deadline, *domain.Deadline]
}

// NewDeadlineRepository creates the repository for terminos
func NewDeadlineRepository(db *gorm.DB) DeadlineRepository {
	return &deadlineRepositoryImpl{newItemRepository[domain.Deadline](db, "fecha_creacion")}
}

func (r *deadlineRepositoryImpl) FindExpired(ctx context.Context, today domain.Day) ([]*domain.Deadline, error) {
	var items []*domain.Deadline
	if err := r.db.WithContext(ctx).
		Where("fecha_inicio_termino IS NOT NULL").
		Where("fecha_finaliza_termino IS NOT NULL AND fecha_finaliza_termino <= ?", today).
		Where("estado <> ?", domain.StatusDone).
		Order("fecha_finaliza_termino ASC").
		Find(&items).Error; err != nil {
		return nil, domain.NewReadError("expired", r.table, err)
	}
	return items, nil
}
