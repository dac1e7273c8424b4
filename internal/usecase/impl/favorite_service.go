package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoriteService) ListFavorites(ctx context.Context, session *entity.Session) ([]*entity.Favorite, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	favorites, err := srv.favoriteRepo.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list favorites")
	}

	return favorites, nil
}

// AddFavorite rejects a second add of the same recipe with a conflict.
func (srv *favoriteService) AddFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) (*entity.Favorite, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	favorite, err := srv.favoriteRepo.Add(ctx, session.UserID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "failed to add favorite")
		}

		return nil, translateRepoError(err, "failed to add favorite")
	}

	return favorite, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) error {
	if session == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if err := srv.favoriteRepo.Remove(ctx, session.UserID, recipeID); err != nil {
		return translateRepoError(err, "failed to remove favorite")
	}

	return nil
}

func (srv *favoriteService) IsFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) (bool, error) {
	if session == nil {
		return false, nil
	}

	exists, err := srv.favoriteRepo.Exists(ctx, session.UserID, recipeID)
	if err != nil {
		return false, translateRepoError(err, "failed to check favorite")
	}

	return exists, nil
}

// FavoriteStatus reports a flag for every requested recipe, false when not favorited.
func (srv *favoriteService) FavoriteStatus(ctx context.Context, session *entity.Session, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	status := make(map[uuid.UUID]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		status[id] = false
	}
	if session == nil || len(recipeIDs) == 0 {
		return status, nil
	}

	favorited, err := srv.favoriteRepo.FilterFavorited(ctx, session.UserID, recipeIDs)
	if err != nil {
		return nil, translateRepoError(err, "failed to load favorite status")
	}
	for _, id := range favorited {
		status[id] = true
	}

	return status, nil
}

// ToggleFavorite reads the stored flag, flips it through a FavoriteToggle and
// writes the change. A failed write rolls the toggle back.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, session *entity.Session, recipeID uuid.UUID) (*usecase.ToggleFavoriteOutput, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	exists, err := srv.favoriteRepo.Exists(ctx, session.UserID, recipeID)
	if err != nil {
		return nil, translateRepoError(err, "failed to check favorite")
	}

	toggle := entity.NewFavoriteToggle(exists)
	phase, err := toggle.Begin()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	switch phase {
	case entity.TogglePendingAdd:
		_, err = srv.favoriteRepo.Add(ctx, session.UserID, recipeID)
		if errors.Is(err, repository.ErrInvalidReference) {
			err = errors.Wrap(domainerrors.ErrRecipeNotFound, err.Error())
		}
	case entity.TogglePendingRemove:
		err = srv.favoriteRepo.Remove(ctx, session.UserID, recipeID)
	}

	if err != nil {
		toggle.Rollback()
		srv.log(ctx).Warn("Favorite toggle rolled back",
			slog.String("recipe_id", recipeID.String()),
			slog.String("phase", phase.String()),
			slog.Any("error", err),
		)

		return &usecase.ToggleFavoriteOutput{RecipeID: recipeID, Favorited: toggle.Favorited()},
			translateRepoError(err, "failed to toggle favorite")
	}

	toggle.Commit()

	return &usecase.ToggleFavoriteOutput{RecipeID: recipeID, Favorited: toggle.Favorited()}, nil
}
