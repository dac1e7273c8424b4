package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeDetailUsecase assembles a recipe with all of its child collections.
type RecipeDetailUsecase interface {
	// GetRecipeFull always returns a bundle. The error is the first failure in
	// the order recipe, ingredients, instructions, benefits; whatever loaded is
	// still present in the bundle.
	GetRecipeFull(ctx context.Context, id uuid.UUID) (*RecipeBundle, error)
}

// RecipeBundle is a recipe together with its ordered child collections.
// Collections are never nil.
type RecipeBundle struct {
	Recipe       *entity.Recipe             `json:"recipe"`
	Ingredients  []*entity.Ingredient       `json:"ingredients"`
	Instructions []*entity.Instruction      `json:"instructions"`
	Benefits     []*entity.NutritionBenefit `json:"benefits"`
}

// PartialBundleError reports a child collection that failed to load while the
// recipe itself did.
type PartialBundleError struct {
	Collection string
	Err        error
}

func (e *PartialBundleError) Error() string {
	return e.Err.Error()
}

func (e *PartialBundleError) Unwrap() error {
	return e.Err
}

// Label is safe to show to clients.
func (e *PartialBundleError) Label() string {
	return e.Collection + " unavailable"
}
