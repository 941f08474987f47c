package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty levels a recipe can carry.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a catalog recipe together with its ordered ingredient list.
type Recipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CookTime     int              `gorm:"not null" json:"cook_time"` // minutes
	Servings     int              `gorm:"not null" json:"servings"`
	Difficulty   string           `gorm:"size:20;not null" json:"difficulty"`
	Rating       float64          `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ImageURL     string           `gorm:"size:255" json:"image_url"`
	IsVegetarian bool             `gorm:"default:false" json:"is_vegetarian"`
	IsVegan      bool             `gorm:"default:false" json:"is_vegan"`
	IsGlutenFree bool             `gorm:"default:false" json:"is_gluten_free"`
	IsKeto       bool             `gorm:"default:false" json:"is_keto"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// BeforeCreate assigns an ID when the caller did not supply one.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave clamps the rating into the valid 0.00-5.00 range.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	if r.Rating < 0 {
		r.Rating = 0
	}
	if r.Rating > 5 {
		r.Rating = 5
	}
	return nil
}

// RecipeIngredient joins a recipe to a catalog ingredient with quantity
// information. Position preserves the declared order of the recipe's
// ingredient list.
type RecipeIngredient struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	Amount       string     `gorm:"size:50;not null" json:"amount"`
	Unit         string     `gorm:"size:50" json:"unit"`
	IsRequired   bool       `gorm:"not null" json:"is_required"`
	Position     int        `gorm:"not null;default:0" json:"position"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
