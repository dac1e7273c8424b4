package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when removing a pair that is not saved.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned by the unique (user, recipe) constraint.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the operations for a user's saved recipes.
type FavoriteRepository interface {
	// ListByUser returns the favorites of a user with a recipe summary, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Add saves a recipe for a user.
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error)

	// Remove deletes the (user, recipe) pair.
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error

	// Exists reports whether the pair is saved.
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

	// FilterFavorited returns the subset of recipeIDs the user has saved.
	FilterFavorited(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]uuid.UUID, error)
}
