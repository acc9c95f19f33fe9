package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change on a board
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventMoved   EventType = "moved"
	EventDeleted EventType = "deleted"
)

// BoardEvent is broadcast to clients watching a process
type BoardEvent struct {
	Type      EventType   `json:"type"`
	Board     string      `json:"board"`
	ProcessID uuid.UUID   `json:"process_id"`
	ItemID    uuid.UUID   `json:"item_id"`
	From      Status      `json:"from,omitempty"`
	To        Status      `json:"to,omitempty"`
	Item      interface{} `json:"item,omitempty"`
	At        time.Time   `json:"at"`
}
