package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meeting is a scheduled meeting (reunión) of a process
type Meeting struct {
	Identity
	ProcessID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_reuniones_process_id" json:"process_id"`
	Description   string     `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Status        Status     `gorm:"column:estado;type:varchar(20);not null;default:'Pendiente'" json:"estado"`
	Priority      Priority   `gorm:"column:prioridad;type:varchar(10)" json:"prioridad,omitempty"`
	ResponsibleID *uuid.UUID `gorm:"column:responsable_id;type:uuid;index:idx_reuniones_responsable_id" json:"responsable_id,omitempty"`
	Link          string     `gorm:"type:text" json:"link,omitempty"`
	ScheduledAt   *time.Time `gorm:"column:fecha_hora" json:"fecha_hora"`
	CreatedAt     time.Time  `gorm:"column:fecha_creacion;autoCreateTime;index:idx_reuniones_fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "reuniones"
}

func (m *Meeting) Process() uuid.UUID      { return m.ProcessID }
func (m *Meeting) CurrentStatus() Status   { return m.Status }
func (m *Meeting) SetStatus(s Status)      { m.Status = s }
func (m *Meeting) SearchText() string      { return m.Description }
func (m *Meeting) Responsible() *uuid.UUID { return m.ResponsibleID }
func (m *Meeting) Urgency() Priority       { return m.Priority }
func (m *Meeting) FilterDate() *time.Time  { return m.ScheduledAt }

func (m *Meeting) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(m.Description) == "" {
		v.Add("descripcion", "La descripción es obligatoria")
	}
	if m.ScheduledAt == nil || m.ScheduledAt.IsZero() {
		v.Add("fecha_hora", "La fecha y hora de la reunión es obligatoria")
	}
	validateStatus(v, m.Status)
	validatePriority(v, m.Priority)
	return v.OrNil()
}

func (m *Meeting) MutableFields() map[string]interface{} {
	return map[string]interface{}{
		"descripcion":    m.Description,
		"estado":         m.Status,
		"prioridad":      m.Priority,
		"responsable_id": responsibleValue(m.ResponsibleID),
		"link":           m.Link,
		"fecha_hora":     m.ScheduledAt,
	}
}

func (m *Meeting) PrepareInsert(processID uuid.UUID) {
	m.ID = uuid.Nil
	m.ProcessID = processID
	m.CreatedAt = time.Time{}
	if m.Status == "" {
		m.Status = StatusPending
	}
}
