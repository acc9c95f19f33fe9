package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity holds the store-assigned primary key shared by every record
type Identity struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (i *Identity) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Key returns the record identifier
func (i Identity) Key() uuid.UUID {
	return i.ID
}
