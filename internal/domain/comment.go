package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HearingComment is a note left on a hearing by a responsible party
type HearingComment struct {
	Identity
	HearingID     uuid.UUID  `gorm:"column:audiencia_id;type:uuid;not null;index:idx_comentarios_audiencia_id" json:"audiencia_id"`
	ResponsibleID *uuid.UUID `gorm:"column:responsable_id;type:uuid" json:"responsable_id,omitempty"`
	Text          string     `gorm:"column:comentario_texto;type:text;not null" json:"comentario_texto"`
	CreatedAt     time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

// TableName specifies the table name for HearingComment
func (HearingComment) TableName() string {
	return "comentarios_audiencia"
}

func (c *HearingComment) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return NewValidationError("comentario_texto", "El comentario no puede estar vacío")
	}
	return nil
}
