// Package kanban holds the board reconciliation model: filtering, status
// partitioning, pagination and drag transitions over an in-memory item list.
package kanban

import (
	"time"

	"github.com/google/uuid"

	"legal-board-api/internal/domain"
)

// Item is the part of a board record the kanban model reads and writes
type Item interface {
	Key() uuid.UUID
	CurrentStatus() domain.Status
	SetStatus(domain.Status)
	SearchText() string
	Responsible() *uuid.UUID
	FilterDate() *time.Time
}
