package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// SearchUsecase searches the recipe catalog and keeps the caller's recent queries.
type SearchUsecase interface {
	// SearchRecipes matches name, local name and description. A non-nil session
	// records the query in the caller's history.
	SearchRecipes(ctx context.Context, session *entity.Session, query string) ([]*entity.Recipe, error)
	ListHistory(ctx context.Context, session *entity.Session) ([]*entity.SearchHistory, error)
	ClearHistory(ctx context.Context, session *entity.Session) error
}
