package domain

import "github.com/google/uuid"

// Process is the legal case that scopes every board item
type Process struct {
	Identity
	Name       string `gorm:"column:nombre;type:varchar(255)" json:"nombre"`
	BucketPath string `gorm:"column:bucket_path;type:varchar(255)" json:"bucket_path"`
}

// TableName specifies the table name for Process
func (Process) TableName() string {
	return "procesos"
}

// ResponsibleStatusActive marks a responsible party that can be assigned
const ResponsibleStatusActive = "Activo"

// Responsible is a person that can be assigned to board items
type Responsible struct {
	Identity
	FirstName string `gorm:"column:nombre;type:varchar(120);not null;index:idx_responsables_nombre" json:"nombre"`
	LastName  string `gorm:"column:apellido;type:varchar(120)" json:"apellido"`
	Email     string `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	State     string `gorm:"column:estado;type:varchar(20);not null;default:'Activo';index:idx_responsables_estado" json:"estado"`
}

// TableName specifies the table name for Responsible
func (Responsible) TableName() string {
	return "responsables"
}

// FullName joins first and last name the way cards display them
func (r Responsible) FullName() string {
	return joinText(r.FirstName, r.LastName)
}

// ResponsibleIndex maps responsible ids to their records
type ResponsibleIndex map[uuid.UUID]Responsible

// IndexResponsibles builds a lookup table from a list
func IndexResponsibles(list []Responsible) ResponsibleIndex {
	idx := make(ResponsibleIndex, len(list))
	for _, r := range list {
		idx[r.ID] = r
	}
	return idx
}
