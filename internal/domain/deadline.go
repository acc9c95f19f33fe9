package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deadline is a legal term (término) with an optional date range
type Deadline struct {
	Identity
	ProcessID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_terminos_process_id" json:"process_id"`
	Description   string     `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Status        Status     `gorm:"column:estado;type:varchar(20);not null;default:'Pendiente'" json:"estado"`
	Priority      Priority   `gorm:"column:prioridad;type:varchar(10)" json:"prioridad,omitempty"`
	ResponsibleID *uuid.UUID `gorm:"column:responsable_id;type:uuid;index:idx_terminos_responsable_id" json:"responsable_id,omitempty"`
	StartDate     *Day       `gorm:"column:fecha_inicio_termino" json:"fecha_inicio_termino,omitempty"`
	EndDate       *Day       `gorm:"column:fecha_finaliza_termino;index:idx_terminos_fecha_finaliza" json:"fecha_finaliza_termino,omitempty"`
	CreatedAt     time.Time  `gorm:"column:fecha_creacion;autoCreateTime;index:idx_terminos_fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name for Deadline
func (Deadline) TableName() string {
	return "terminos"
}

func (d *Deadline) Process() uuid.UUID      { return d.ProcessID }
func (d *Deadline) CurrentStatus() Status   { return d.Status }
func (d *Deadline) SetStatus(s Status)      { d.Status = s }
func (d *Deadline) SearchText() string      { return d.Description }
func (d *Deadline) Responsible() *uuid.UUID { return d.ResponsibleID }
func (d *Deadline) Urgency() Priority       { return d.Priority }

// FilterDate is the creation time; the deadline board filters on it
func (d *Deadline) FilterDate() *time.Time {
	if d.CreatedAt.IsZero() {
		return nil
	}
	return &d.CreatedAt
}

// Expired reports whether the term ended before now without being finished
func (d *Deadline) Expired(now time.Time) bool {
	if d.StartDate == nil || d.EndDate == nil {
		return false
	}
	return d.EndDate.Time().Before(now) && d.Status != StatusDone
}

func (d *Deadline) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(d.Description) == "" {
		v.Add("descripcion", "La descripción es obligatoria")
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Time().Before(d.StartDate.Time()) {
		v.Add("fecha_finaliza_termino", "La fecha de fin no puede ser anterior a la fecha de inicio")
	}
	validateStatus(v, d.Status)
	validatePriority(v, d.Priority)
	return v.OrNil()
}

func (d *Deadline) MutableFields() map[string]interface{} {
	return map[string]interface{}{
		"descripcion":            d.Description,
		"estado":                 d.Status,
		"prioridad":              d.Priority,
		"responsable_id":         responsibleValue(d.ResponsibleID),
		"fecha_inicio_termino":   d.StartDate,
		"fecha_finaliza_termino": d.EndDate,
	}
}

func (d *Deadline) PrepareInsert(processID uuid.UUID) {
	d.ID = uuid.Nil
	d.ProcessID = processID
	d.CreatedAt = time.Time{}
	if d.Status == "" {
		d.Status = StatusPending
	}
}
