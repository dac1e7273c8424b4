package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	return NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		Logger:       newTestLogger(),
	}), favoriteRepo
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)
	ctx := context.Background()
	session := newSession()
	recipeID := uuid.New()

	favoriteRepo.EXPECT().Add(ctx, session.UserID, recipeID).Return(nil, repository.ErrDuplicateFavorite)

	_, err := service.AddFavorite(ctx, session, recipeID)

	require.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_AddFavorite_UnknownRecipe(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)
	ctx := context.Background()
	session := newSession()
	recipeID := uuid.New()

	favoriteRepo.EXPECT().Add(ctx, session.UserID, recipeID).Return(nil, repository.ErrInvalidReference)

	_, err := service.AddFavorite(ctx, session, recipeID)

	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestFavoriteService_RequiresSession(t *testing.T) {
	service, _ := createTestFavoriteService(t)
	ctx := context.Background()

	_, err := service.ListFavorites(ctx, nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = service.ToggleFavorite(ctx, nil, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	err = service.RemoveFavorite(ctx, nil, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	favorited, err := service.IsFavorite(ctx, nil, uuid.New())
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_FavoriteStatus(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)
	ctx := context.Background()
	session := newSession()
	saved, other := uuid.New(), uuid.New()
	ids := []uuid.UUID{saved, other}

	favoriteRepo.EXPECT().FilterFavorited(ctx, session.UserID, ids).Return([]uuid.UUID{saved}, nil)

	status, err := service.FavoriteStatus(ctx, session, ids)

	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{saved: true, other: false}, status)

	anonymous, err := service.FavoriteStatus(ctx, nil, ids)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{saved: false, other: false}, anonymous)
}

func TestFavoriteService_ToggleFavorite(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		setup   func(repo *mockRepo.MockFavoriteRepository, userID, recipeID uuid.UUID)
		wantFav bool
	}{
		{
			name:   "adds when absent",
			exists: false,
			setup:  func(repo *mockRepo.MockFavoriteRepository, userID, recipeID uuid.UUID) {
				repo.EXPECT().Add(mock.Anything, userID, recipeID).Return(&entity.Favorite{}, nil)
			},
			wantFav: true,
		},
		{
			name:   "removes when present",
			exists: true,
			setup:  func(repo *mockRepo.MockFavoriteRepository, userID, recipeID uuid.UUID) {
				repo.EXPECT().Remove(mock.Anything, userID, recipeID).Return(nil)
			},
			wantFav: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, favoriteRepo := createTestFavoriteService(t)
			ctx := context.Background()
			session := newSession()
			recipeID := uuid.New()

			favoriteRepo.EXPECT().Exists(ctx, session.UserID, recipeID).Return(tt.exists, nil)
			tt.setup(favoriteRepo, session.UserID, recipeID)

			output, err := service.ToggleFavorite(ctx, session, recipeID)

			require.NoError(t, err)
			assert.Equal(t, recipeID, output.RecipeID)
			assert.Equal(t, tt.wantFav, output.Favorited)
		})
	}
}

func TestFavoriteService_ToggleFavorite_RollsBackOnFailure(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)
	ctx := context.Background()
	session := newSession()
	recipeID := uuid.New()

	favoriteRepo.EXPECT().Exists(ctx, session.UserID, recipeID).Return(true, nil)
	favoriteRepo.EXPECT().Remove(ctx, session.UserID, recipeID).Return(errors.New("write failed"))

	output, err := service.ToggleFavorite(ctx, session, recipeID)

	require.Error(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Favorited)
}
