package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecipeNotFound is returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
// Read methods return recipes joined with their country name and flag.
type RecipeRepository interface {
	// List returns all recipes, newest first.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// ListByCountry returns the recipes of one country ordered by name.
	ListByCountry(ctx context.Context, countryID uuid.UUID) ([]*entity.Recipe, error)

	// Search matches the query case-insensitively against name, local name and description.
	Search(ctx context.Context, query string) ([]*entity.Recipe, error)

	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindRandom returns one recipe picked at random.
	FindRandom(ctx context.Context) (*entity.Recipe, error)

	// Create persists a new recipe and returns the stored row.
	Create(ctx context.Context, input *entity.RecipeInput) (*entity.Recipe, error)

	// Update writes the present fields of input and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, input *entity.RecipeInput) (*entity.Recipe, error)

	// Delete removes a recipe; child collections are removed by the storage cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
