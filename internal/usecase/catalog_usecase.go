// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// CountryUsecase defines the interface for country catalog operations.
type CountryUsecase interface {
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	GetCountry(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	GetCountryByName(ctx context.Context, name string) (*entity.Country, error)
	CreateCountry(ctx context.Context, session *entity.Session, input *entity.CountryInput) (*entity.Country, error)
	UpdateCountry(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.CountryInput) (*entity.Country, error)
	DeleteCountry(ctx context.Context, session *entity.Session, id uuid.UUID) error
}

// RecipeUsecase defines the interface for recipe catalog operations.
type RecipeUsecase interface {
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)
	ListRecipesByCountry(ctx context.Context, countryID uuid.UUID) ([]*entity.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	CreateRecipe(ctx context.Context, session *entity.Session, input *entity.RecipeInput) (*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.RecipeInput) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, session *entity.Session, id uuid.UUID) error

	// RecipeOfTheDay picks one recipe deterministically for the UTC date of now.
	RecipeOfTheDay(ctx context.Context, now time.Time) (*entity.Recipe, error)

	// RecipeQRCode renders a PNG QR code of the recipe share link.
	RecipeQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// RecipeContentUsecase manages the ordered child collections of a recipe.
type RecipeContentUsecase interface {
	ListIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.Ingredient, error)
	AddIngredient(ctx context.Context, session *entity.Session, recipeID uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error)
	UpdateIngredient(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error)
	DeleteIngredient(ctx context.Context, session *entity.Session, id uuid.UUID) error

	ListInstructions(ctx context.Context, recipeID uuid.UUID) ([]*entity.Instruction, error)
	AddInstruction(ctx context.Context, session *entity.Session, recipeID uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error)
	UpdateInstruction(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error)
	DeleteInstruction(ctx context.Context, session *entity.Session, id uuid.UUID) error

	ListBenefits(ctx context.Context, recipeID uuid.UUID) ([]*entity.NutritionBenefit, error)
	AddBenefit(ctx context.Context, session *entity.Session, recipeID uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error)
	UpdateBenefit(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error)
	DeleteBenefit(ctx context.Context, session *entity.Session, id uuid.UUID) error
}
