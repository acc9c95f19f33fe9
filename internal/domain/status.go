package domain

import "fmt"

// Status is the board-column discriminant of a board item
type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusInProgress Status = "En Proceso"
	StatusDone       Status = "Finalizado"
)

// Statuses lists the board columns in display order
var Statuses = []Status{StatusPending, StatusInProgress, StatusDone}

// Valid reports whether s is one of the three board columns
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus converts a raw column value into a Status
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown estado %q", raw)
	}
	return s, nil
}

// Priority is the optional urgency label of a board item
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

// Valid reports whether p is a known priority. The empty priority is valid.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
