package impl

import (
	"context"
	"testing"

	"passport/internal/domain/constants"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSearchService(t *testing.T) (usecase.SearchUsecase, *mockRepo.MockRecipeRepository, *mockRepo.MockSearchHistoryRepository) {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	historyRepo := mockRepo.NewMockSearchHistoryRepository(t)

	return NewSearchService(SearchServiceParams{
		RecipeRepo:  recipeRepo,
		HistoryRepo: historyRepo,
		Logger:      newTestLogger(),
	}), recipeRepo, historyRepo
}

func TestSearchService_SearchRecipes_RecordsHistory(t *testing.T) {
	service, recipeRepo, historyRepo := createTestSearchService(t)
	ctx := context.Background()
	session := newSession()
	found := []*entity.Recipe{{ID: uuid.New(), Name: "Pad Thai"}}

	recipeRepo.EXPECT().Search(ctx, "thai").Return(found, nil)
	historyRepo.EXPECT().Add(ctx, session.UserID, "thai").Return(nil)

	recipes, err := service.SearchRecipes(ctx, session, "  thai ")

	require.NoError(t, err)
	assert.Equal(t, found, recipes)
}

func TestSearchService_SearchRecipes_HistoryFailureIgnored(t *testing.T) {
	service, recipeRepo, historyRepo := createTestSearchService(t)
	ctx := context.Background()
	session := newSession()

	recipeRepo.EXPECT().Search(ctx, "curry").Return([]*entity.Recipe{}, nil)
	historyRepo.EXPECT().Add(ctx, session.UserID, "curry").Return(errors.New("insert failed"))

	recipes, err := service.SearchRecipes(ctx, session, "curry")

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestSearchService_SearchRecipes_Anonymous(t *testing.T) {
	service, recipeRepo, _ := createTestSearchService(t)
	ctx := context.Background()

	recipeRepo.EXPECT().Search(ctx, "taco").Return([]*entity.Recipe{}, nil)

	_, err := service.SearchRecipes(ctx, nil, "taco")

	require.NoError(t, err)
}

func TestSearchService_SearchRecipes_BlankQuery(t *testing.T) {
	service, _, _ := createTestSearchService(t)

	recipes, err := service.SearchRecipes(context.Background(), newSession(), "   ")

	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestSearchService_ListHistory(t *testing.T) {
	service, _, historyRepo := createTestSearchService(t)
	ctx := context.Background()
	session := newSession()

	historyRepo.EXPECT().
		ListByUser(ctx, session.UserID, constants.SearchHistoryLimit).
		Return([]*entity.SearchHistory{{SearchQuery: "ramen"}}, nil)

	history, err := service.ListHistory(ctx, session)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = service.ListHistory(ctx, nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
