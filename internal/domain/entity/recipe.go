package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the preparation difficulty of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is applied when a recipe is created without one.
const DefaultDifficulty = DifficultyMedium

// String returns the string representation of the Difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// IsValid checks if the Difficulty is a valid value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Recipe is a dish of the catalog. CountryName and FlagEmoji are only
// populated on read paths that join the owning country.
type Recipe struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	NameLocal           *string    `json:"name_local"`
	Description         *string    `json:"description"`
	History             *string    `json:"history"`
	ImageURL            *string    `json:"image_url"`
	IngredientsImageURL *string    `json:"ingredients_image_url"`
	PrepTime            *int       `json:"prep_time"` // Minutes.
	CookTime            *int       `json:"cook_time"` // Minutes.
	Servings            *int       `json:"servings"`
	DifficultyLevel     Difficulty `json:"difficulty_level"`
	CountryID           *uuid.UUID `json:"country_id"`
	QuoteText           *string    `json:"quote_text"`
	QuoteHighlight      *string    `json:"quote_highlight"`
	CountryName         *string    `json:"country_name,omitempty"`
	FlagEmoji           *string    `json:"flag_emoji,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// RecipeInput carries the fields of a recipe create or partial update.
// A nil field is left untouched; a blank string clears the column and
// uuid.Nil clears the country reference.
type RecipeInput struct {
	Name                *string     `json:"name"`
	NameLocal           *string     `json:"name_local"`
	Description         *string     `json:"description"`
	History             *string     `json:"history"`
	ImageURL            *string     `json:"image_url"`
	IngredientsImageURL *string     `json:"ingredients_image_url"`
	PrepTime            *int        `json:"prep_time"`
	CookTime            *int        `json:"cook_time"`
	Servings            *int        `json:"servings"`
	DifficultyLevel     *Difficulty `json:"difficulty_level"`
	CountryID           *uuid.UUID  `json:"country_id"`
	QuoteText           *string     `json:"quote_text"`
	QuoteHighlight      *string     `json:"quote_highlight"`
}
