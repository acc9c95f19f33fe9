package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Hearing is a scheduled court hearing (audiencia) of a process
type Hearing struct {
	Identity
	ProcessID     uuid.UUID                   `gorm:"type:uuid;not null;index:idx_audiencias_process_id" json:"process_id"`
	Description   string                      `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Status        Status                      `gorm:"column:estado;type:varchar(20);not null;default:'Pendiente'" json:"estado"`
	Priority      Priority                    `gorm:"column:prioridad;type:varchar(10)" json:"prioridad,omitempty"`
	ResponsibleID *uuid.UUID                  `gorm:"column:responsable_id;type:uuid;index:idx_audiencias_responsable_id" json:"responsable_id,omitempty"`
	Link          string                      `gorm:"type:text" json:"link,omitempty"`
	ScheduledAt   *time.Time                  `gorm:"column:fecha_hora" json:"fecha_hora"`
	Attachments   datatypes.JSONSlice[string] `gorm:"column:archivos_adjuntos" json:"archivos_adjuntos,omitempty"`
	CreatedAt     time.Time                   `gorm:"column:fecha_creacion;autoCreateTime;index:idx_audiencias_fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name for Hearing
func (Hearing) TableName() string {
	return "audiencias"
}

func (h *Hearing) Process() uuid.UUID        { return h.ProcessID }
func (h *Hearing) CurrentStatus() Status     { return h.Status }
func (h *Hearing) SetStatus(s Status)        { h.Status = s }
func (h *Hearing) SearchText() string        { return h.Description }
func (h *Hearing) Responsible() *uuid.UUID   { return h.ResponsibleID }
func (h *Hearing) Urgency() Priority         { return h.Priority }
func (h *Hearing) FilterDate() *time.Time    { return h.ScheduledAt }
func (h *Hearing) AttachmentPaths() []string { return h.Attachments }

// Validate checks the fields the hearing form requires
func (h *Hearing) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(h.Description) == "" {
		v.Add("descripcion", "La descripción es obligatoria")
	}
	if h.ScheduledAt == nil || h.ScheduledAt.IsZero() {
		v.Add("fecha_hora", "La fecha y hora de la audiencia es obligatoria")
	}
	validateStatus(v, h.Status)
	validatePriority(v, h.Priority)
	return v.OrNil()
}

func (h *Hearing) MutableFields() map[string]interface{} {
	return map[string]interface{}{
		"descripcion":       h.Description,
		"estado":            h.Status,
		"prioridad":         h.Priority,
		"responsable_id":    responsibleValue(h.ResponsibleID),
		"link":              h.Link,
		"fecha_hora":        h.ScheduledAt,
		"archivos_adjuntos": h.Attachments,
	}
}

func (h *Hearing) PrepareInsert(processID uuid.UUID) {
	h.ID = uuid.Nil
	h.ProcessID = processID
	h.CreatedAt = time.Time{}
	if h.Status == "" {
		h.Status = StatusPending
	}
}
