package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DateLayout is the date-only projection used by filters and deadline dates
const DateLayout = "2006-01-02"

// BoardItem is implemented by every record shown as a card on a status board
type BoardItem interface {
	Key() uuid.UUID
	Process() uuid.UUID
	CurrentStatus() Status
	SetStatus(Status)
	SearchText() string
	Responsible() *uuid.UUID
	Urgency() Priority
	FilterDate() *time.Time
	Validate() error
	// MutableFields returns the columns a full-record update may overwrite
	MutableFields() map[string]interface{}
	// PrepareInsert scopes a new record to processID and clears store-assigned fields
	PrepareInsert(processID uuid.UUID)
	TableName() string
}

// Day is a calendar date stored in a date column and exchanged as YYYY-MM-DD
type Day struct {
	datatypes.Date
}

// NewDay truncates t to its calendar date
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// ParseDay parses a YYYY-MM-DD string
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Day{}, err
	}
	return NewDay(t), nil
}

// Today is the current UTC calendar date
func Today() Day {
	return NewDay(time.Now().UTC())
}

// Time returns the date as midnight UTC
func (d Day) Time() time.Time {
	return time.Time(d.Date)
}

func (d Day) String() string {
	return d.Time().Format(DateLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts both YYYY-MM-DD and full RFC 3339 timestamps
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = NewDay(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*d = NewDay(t.UTC())
	return nil
}

func validatePriority(v *ValidationError, p Priority) {
	if !p.Valid() {
		v.Add("prioridad", "La prioridad debe ser Alta, Media o Baja")
	}
}

func validateStatus(v *ValidationError, s Status) {
	if !s.Valid() {
		v.Add("estado", "El estado debe ser Pendiente, En Proceso o Finalizado")
	}
}

func responsibleValue(id *uuid.UUID) interface{} {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return *id
}

func joinText(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
