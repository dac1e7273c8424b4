// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Country groups recipes by their origin.
type Country struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the country.
	Name        string    `json:"name"`        // Display name, unique across countries.
	FlagEmoji   *string   `json:"flag_emoji"`  // Optional emoji flag, e.g. "🇯🇵".
	Description *string   `json:"description"` // Optional short introduction.
	ImageURL    *string   `json:"image_url"`   // Optional public URL of the cover or flag image.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this country was created.
}

// CountryInput carries the fields of a country create or partial update.
// A nil field is left untouched; a blank string clears the column.
type CountryInput struct {
	Name        *string `json:"name"`
	FlagEmoji   *string `json:"flag_emoji"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}
