package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for recipe child collections.
var (
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrInstructionNotFound = errors.New("instruction not found")
	ErrBenefitNotFound     = errors.New("nutrition benefit not found")
)

// IngredientRepository persists the ingredient list of recipes.
type IngredientRepository interface {
	// ListByRecipe returns the ingredients of a recipe ordered by order index.
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Ingredient, error)

	// CountByRecipe returns how many ingredients a recipe has.
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	Create(ctx context.Context, recipeID uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error)
	Update(ctx context.Context, id uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InstructionRepository persists the preparation steps of recipes.
type InstructionRepository interface {
	// ListByRecipe returns the instructions of a recipe ordered by step number.
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Instruction, error)

	// CountByRecipe returns how many instructions a recipe has.
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Instruction, error)
	Create(ctx context.Context, recipeID uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error)
	Update(ctx context.Context, id uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NutritionBenefitRepository persists the nutrition benefits of recipes.
type NutritionBenefitRepository interface {
	// ListByRecipe returns the benefits of a recipe ordered by order index.
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.NutritionBenefit, error)

	// CountByRecipe returns how many benefits a recipe has.
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.NutritionBenefit, error)
	Create(ctx context.Context, recipeID uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error)
	Update(ctx context.Context, id uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
