package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders the share code printed on a recipe page.
type QRCodeService interface {
	// GenerateRecipeQR returns a PNG encoding the public link of the recipe.
	GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error)
}
