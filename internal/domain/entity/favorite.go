package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a recipe they saved. A pair is unique.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
	Recipe    *Recipe   `json:"recipes,omitempty"` // Recipe summary, populated on list reads.
}
