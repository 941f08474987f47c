package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a catalog ingredient. Names are stored in canonical
// lower-case form and are unique across the catalog.
type Ingredient struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Category  string         `gorm:"size:50;not null" json:"category"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// BeforeCreate assigns an ID when the caller did not supply one.
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps ingredient names in canonical form.
func (i *Ingredient) BeforeSave(tx *gorm.DB) error {
	i.Name = strings.ToLower(strings.TrimSpace(i.Name))
	return nil
}
