package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/constants"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	recipeRepo  repository.RecipeRepository
	historyRepo repository.SearchHistoryRepository
	logger      *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	RecipeRepo  repository.RecipeRepository
	HistoryRepo repository.SearchHistoryRepository
	Logger      *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		recipeRepo:  params.RecipeRepo,
		historyRepo: params.HistoryRepo,
		logger:      params.Logger,
	}
}

// SearchRecipes returns an empty result for a blank query. Recording the
// query in the history is best effort.
func (srv *searchService) SearchRecipes(ctx context.Context, session *entity.Session, query string) ([]*entity.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Recipe{}, nil
	}

	recipes, err := srv.recipeRepo.Search(ctx, query)
	if err != nil {
		return nil, translateRepoError(err, "failed to search recipes")
	}

	if session != nil {
		if err := srv.historyRepo.Add(ctx, session.UserID, query); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to record search history",
				slog.String("user_id", session.UserID.String()),
				slog.Any("error", err),
			)
		}
	}

	return recipes, nil
}

func (srv *searchService) ListHistory(ctx context.Context, session *entity.Session) ([]*entity.SearchHistory, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	history, err := srv.historyRepo.ListByUser(ctx, session.UserID, constants.SearchHistoryLimit)
	if err != nil {
		return nil, translateRepoError(err, "failed to list search history")
	}

	return history, nil
}

func (srv *searchService) ClearHistory(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if err := srv.historyRepo.Clear(ctx, session.UserID); err != nil {
		return translateRepoError(err, "failed to clear search history")
	}

	return nil
}
