package model

import (
	"github.com/google/uuid"
)

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
type IngredientModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Quantity   *string   `gorm:"type:varchar(255)"`
	OrderIndex int       `gorm:"not null;default:0"`

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// InstructionModel is the GORM-specific struct for the 'instructions' table.
type InstructionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID        uuid.UUID `gorm:"type:uuid;not null;index"`
	StepNumber      int       `gorm:"not null"`
	InstructionText string    `gorm:"type:text;not null"`

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (InstructionModel) TableName() string {
	return "instructions"
}

// NutritionBenefitModel is the GORM-specific struct for the 'nutrition_benefits' table.
type NutritionBenefitModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IngredientName string    `gorm:"type:varchar(255);not null"`
	BenefitText    string    `gorm:"type:text;not null"`
	OrderIndex     int       `gorm:"not null;default:0"`

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NutritionBenefitModel) TableName() string {
	return "nutrition_benefits"
}
