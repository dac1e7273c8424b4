package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the favorites operations of the signed-in user.
type FavoriteUsecase interface {
	ListFavorites(ctx context.Context, session *entity.Session) ([]*entity.Favorite, error)
	AddFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) error
	IsFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) (bool, error)
	FavoriteStatus(ctx context.Context, session *entity.Session, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// ToggleFavorite flips the favorite flag. On a failed write the output
	// carries the flag as it was before the toggle, alongside the error.
	ToggleFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) (*ToggleFavoriteOutput, error)
}

// ToggleFavoriteOutput is the settled state after a toggle.
type ToggleFavoriteOutput struct {
	RecipeID  uuid.UUID `json:"recipe_id"`
	Favorited bool      `json:"favorited"`
}
