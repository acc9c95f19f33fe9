package kanban

import (
	"github.com/google/uuid"

	"legal-board-api/internal/domain"
)

// Columns holds the three status columns in their display order
type Columns[T Item] struct {
	Pending    []T
	InProgress []T
	Done       []T
}

// Column returns the slice for status s
func (c *Columns[T]) Column(s domain.Status) []T {
	switch s {
	case domain.StatusPending:
		return c.Pending
	case domain.StatusInProgress:
		return c.InProgress
	case domain.StatusDone:
		return c.Done
	}
	return nil
}

// Len counts the items across all columns
func (c *Columns[T]) Len() int {
	return len(c.Pending) + len(c.InProgress) + len(c.Done)
}

// Partition splits items by estado keeping their relative order. Items with an
// unknown estado are left out of every column and reported in a
// MalformedDataError; the columns are still returned.
func Partition[T Item](items []T) (Columns[T], error) {
	cols := Columns[T]{
		Pending:    []T{},
		InProgress: []T{},
		Done:       []T{},
	}
	var malformed *domain.MalformedDataError

	for _, it := range items {
		switch st := it.CurrentStatus(); st {
		case domain.StatusPending:
			cols.Pending = append(cols.Pending, it)
		case domain.StatusInProgress:
			cols.InProgress = append(cols.InProgress, it)
		case domain.StatusDone:
			cols.Done = append(cols.Done, it)
		default:
			if malformed == nil {
				malformed = &domain.MalformedDataError{Items: map[uuid.UUID]string{}}
			}
			malformed.Items[it.Key()] = string(st)
		}
	}

	if malformed != nil {
		return cols, malformed
	}
	return cols, nil
}
