package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel is the GORM-specific struct for the 'recipes' table.
type RecipeModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                string     `gorm:"type:varchar(255);not null"`
	NameLocal           *string    `gorm:"type:varchar(255)"`
	Description         *string    `gorm:"type:text"`
	History             *string    `gorm:"type:text"`
	ImageURL            *string    `gorm:"type:text"`
	IngredientsImageURL *string    `gorm:"type:text"`
	PrepTime            *int       `gorm:"type:integer"`
	CookTime            *int       `gorm:"type:integer"`
	Servings            *int       `gorm:"type:integer;check:servings > 0"`
	DifficultyLevel     string     `gorm:"type:varchar(16);not null;default:'medium'"`
	CountryID           *uuid.UUID `gorm:"type:uuid;index"`
	QuoteText           *string    `gorm:"type:text"`
	QuoteHighlight      *string    `gorm:"type:text"`
	CreatedAt           time.Time  `gorm:"index"`

	Country *CountryModel `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeWithCountryModel maps the read-only 'recipes_with_countries' view.
type RecipeWithCountryModel struct {
	RecipeModel
	CountryName *string
	FlagEmoji   *string
}

// TableName explicitly sets the view name for GORM.
func (RecipeWithCountryModel) TableName() string {
	return "recipes_with_countries"
}
