package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"legal-board-api/internal/domain"
)

// ItemRepository is the record store capability shared by every board
type ItemRepository[P domain.BoardItem] interface {
	// List returns the items of a process, newest first
	List(ctx context.Context, processID uuid.UUID) ([]P, error)
	FindByID(ctx context.Context, id uuid.UUID) (P, error)
	// Insert stores item; the store assigns id and creation time
	Insert(ctx context.Context, item P) error
	// Update overwrites the given columns of one item. Last write wins.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[domain.Status]int64, error)
}

// itemRepositoryImpl is the GORM implementation of ItemRepository
type itemRepositoryImpl[T any, P interface {
	*T
	domain.BoardItem
}] struct {
	db            *gorm.DB
	table         string
	createdColumn string
}

func newItemRepository[T any, P interface {
	*T
	domain.BoardItem
}](db *gorm.DB, createdColumn string) *itemRepositoryImpl[T, P] {
	return &itemRepositoryImpl[T, P]{
		db:            db,
		table:         P(new(T)).TableName(),
		createdColumn: createdColumn,
	}
}

// NewHearingRepository creates the repository for audiencias
func NewHearingRepository(db *gorm.DB) ItemRepository[*domain.Hearing] {
	return newItemRepository[domain.Hearing](db, "fecha_creacion")
}

// NewMeetingRepository creates the repository for reuniones
func NewMeetingRepository(db *gorm.DB) ItemRepository[*domain.Meeting] {
	return newItemRepository[domain.Meeting](db, "fecha_creacion")
}

// NewActivityRepository creates the repository for actividades
func NewActivityRepository(db *gorm.DB) ItemRepository[*domain.Activity] {
	return newItemRepository[domain.Activity](db, "fecha_registro")
}

func (r *itemRepositoryImpl[T, P]) List(ctx context.Context, processID uuid.UUID) ([]P, error) {
	var items []P
	if err := r.db.WithContext(ctx).
		Where("process_id = ?", processID).
		Order(r.createdColumn + " DESC").
		Find(&items).Error; err != nil {
		return nil, domain.NewReadError("list", r.table, err)
	}
	return items, nil
}

func (r *itemRepositoryImpl[T, P]) FindByID(ctx context.Context, id uuid.UUID) (P, error) {
	var item T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Table: r.table, ID: id}
		}
		return nil, domain.NewReadError("find", r.table, err)
	}
	return P(&item), nil
}

func (r *itemRepositoryImpl[T, P]) Insert(ctx context.Context, item P) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return domain.NewWriteError("insert", r.table, err)
	}
	return nil
}

func (r *itemRepositoryImpl[T, P]) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(P(new(T))).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return domain.NewWriteError("update", r.table, result.Error)
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Table: r.table, ID: id}
	}
	return nil
}

func (r *itemRepositoryImpl[T, P]) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return r.Update(ctx, id, map[string]interface{}{"estado": status})
}

func (r *itemRepositoryImpl[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(P(new(T)))
	if result.Error != nil {
		return domain.NewWriteError("delete", r.table, result.Error)
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Table: r.table, ID: id}
	}
	return nil
}

// CountByStatus counts every item of the table grouped by estado
func (r *itemRepositoryImpl[T, P]) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	var rows []struct {
		Estado domain.Status
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(P(new(T))).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error; err != nil {
		return nil, domain.NewReadError("count", r.table, err)
	}

	counts := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Estado] = row.Total
	}
	return counts, nil
}
