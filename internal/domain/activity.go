package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Activity is a unit of work (actividad) tracked on the activities board
type Activity struct {
	Identity
	ProcessID     uuid.UUID                   `gorm:"type:uuid;not null;index:idx_actividades_process_id" json:"process_id"`
	ResponsibleID *uuid.UUID                  `gorm:"column:responsable_id;type:uuid;index:idx_actividades_responsable_id" json:"responsable_id,omitempty"`
	Name          string                      `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Description   string                      `gorm:"column:descripcion;type:text" json:"descripcion,omitempty"`
	StartsAt      *time.Time                  `gorm:"column:fecha_inicio" json:"fecha_inicio,omitempty"`
	EndsAt        *time.Time                  `gorm:"column:fecha_fin" json:"fecha_fin,omitempty"`
	Status        Status                      `gorm:"column:estado;type:varchar(20);not null;default:'Pendiente'" json:"estado"`
	Priority      Priority                    `gorm:"column:prioridad;type:varchar(10)" json:"prioridad,omitempty"`
	Attachments   datatypes.JSONSlice[string] `gorm:"column:archivos_adjuntos" json:"archivos_adjuntos,omitempty"`
	RegisteredAt  time.Time                   `gorm:"column:fecha_registro;autoCreateTime;index:idx_actividades_fecha_registro" json:"fecha_registro"`
}

// TableName specifies the table name for Activity
func (Activity) TableName() string {
	return "actividades"
}

func (a *Activity) Process() uuid.UUID        { return a.ProcessID }
func (a *Activity) CurrentStatus() Status     { return a.Status }
func (a *Activity) SetStatus(s Status)        { a.Status = s }
func (a *Activity) SearchText() string        { return joinText(a.Name, a.Description) }
func (a *Activity) Responsible() *uuid.UUID   { return a.ResponsibleID }
func (a *Activity) Urgency() Priority         { return a.Priority }
func (a *Activity) FilterDate() *time.Time    { return a.StartsAt }
func (a *Activity) AttachmentPaths() []string { return a.Attachments }

func (a *Activity) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(a.Name) == "" {
		v.Add("nombre", "El nombre es obligatorio")
	}
	if a.StartsAt != nil && a.EndsAt != nil && a.EndsAt.Before(*a.StartsAt) {
		v.Add("fecha_fin", "La fecha de fin no puede ser anterior a la fecha de inicio")
	}
	validateStatus(v, a.Status)
	validatePriority(v, a.Priority)
	return v.OrNil()
}

func (a *Activity) MutableFields() map[string]interface{} {
	return map[string]interface{}{
		"nombre":            a.Name,
		"descripcion":       a.Description,
		"responsable_id":    responsibleValue(a.ResponsibleID),
		"fecha_inicio":      a.StartsAt,
		"fecha_fin":         a.EndsAt,
		"estado":            a.Status,
		"prioridad":         a.Priority,
		"archivos_adjuntos": a.Attachments,
	}
}

func (a *Activity) PrepareInsert(processID uuid.UUID) {
	a.ID = uuid.Nil
	a.ProcessID = processID
	a.RegisteredAt = time.Time{}
	if a.Status == "" {
		a.Status = StatusPending
	}
}
