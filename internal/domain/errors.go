package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrRemoteRead    = errors.New("remote read failed")
	ErrRemoteWrite   = errors.New("remote write failed")
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("record not found")
	ErrMalformedData = errors.New("malformed data")
)

// RemoteError wraps a transport or store failure for a single remote operation
type RemoteError struct {
	Op    string // list, find, insert, update, delete
	Table string
	Write bool
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is classifies the error as a read or a write failure
func (e *RemoteError) Is(target error) bool {
	if e.Write {
		return target == ErrRemoteWrite
	}
	return target == ErrRemoteRead
}

// NewReadError wraps err as a RemoteReadError
func NewReadError(op, table string, err error) error {
	return &RemoteError{Op: op, Table: table, Err: err}
}

// NewWriteError wraps err as a RemoteWriteError
func NewWriteError(op, table string, err error) error {
	return &RemoteError{Op: op, Table: table, Write: true, Err: err}
}

// ValidationError carries per-field messages meant for inline display
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a message for field
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// OrNil returns nil when no field failed
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a missing record
type NotFoundError struct {
	Table string
	ID    uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Table, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedDataError lists records whose estado is outside the known columns
type MalformedDataError struct {
	Items map[uuid.UUID]string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("%d item(s) with unknown estado", len(e.Items))
}

func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}

// IDs returns the offending item ids in a stable order
func (e *MalformedDataError) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Items))
	for id := range e.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
