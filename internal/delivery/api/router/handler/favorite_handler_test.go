package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"passport/internal/delivery/api/middleware"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteHandler(t *testing.T) (*FavoriteHandler, *mockUC.MockFavoriteUsecase) {
	t.Helper()

	favoriteUC := mockUC.NewMockFavoriteUsecase(t)

	return NewFavoriteHandler(FavoriteHandlerParams{
		FavoriteUC: favoriteUC,
		Logger:     slog.New(slog.DiscardHandler),
	}), favoriteUC
}

func TestFavoriteHandler_ToggleFavorite(t *testing.T) {
	session := &entity.Session{UserID: uuid.New(), Role: entity.RoleUser}
	recipeID := uuid.New()

	t.Run("returns the new state", func(t *testing.T) {
		h, favoriteUC := newFavoriteHandler(t)
		favoriteUC.EXPECT().ToggleFavorite(mock.Anything, session, recipeID).
			Return(&usecase.ToggleFavoriteOutput{RecipeID: recipeID, Favorited: true}, nil).Once()

		c, rec := newContext(http.MethodPost, "/")
		middleware.SetSession(c, session)
		c.SetParamNames("recipeId")
		c.SetParamValues(recipeID.String())
		require.NoError(t, h.ToggleFavorite(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data usecase.ToggleFavoriteOutput `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Data.Favorited)
		assert.Equal(t, recipeID, body.Data.RecipeID)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		h, favoriteUC := newFavoriteHandler(t)
		favoriteUC.EXPECT().ToggleFavorite(mock.Anything, session, recipeID).
			Return(nil, errors.WithStack(domainerrors.ErrRecipeNotFound)).Once()

		c, rec := newContext(http.MethodPost, "/")
		middleware.SetSession(c, session)
		c.SetParamNames("recipeId")
		c.SetParamValues(recipeID.String())
		require.NoError(t, h.ToggleFavorite(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requires a session", func(t *testing.T) {
		h, _ := newFavoriteHandler(t)

		c, rec := newContext(http.MethodPost, "/")
		c.SetParamNames("recipeId")
		c.SetParamValues(recipeID.String())
		require.NoError(t, h.ToggleFavorite(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFavoriteHandler_FavoriteStatus(t *testing.T) {
	session := &entity.Session{UserID: uuid.New(), Role: entity.RoleUser}
	first, second := uuid.New(), uuid.New()

	t.Run("parses the id list", func(t *testing.T) {
		h, favoriteUC := newFavoriteHandler(t)
		favoriteUC.EXPECT().FavoriteStatus(mock.Anything, session, []uuid.UUID{first, second}).
			Return(map[uuid.UUID]bool{first: true, second: false}, nil).Once()

		c, rec := newContext(http.MethodGet, "/api/favorites/status?ids="+first.String()+",%20"+second.String()+",")
		middleware.SetSession(c, session)
		require.NoError(t, h.FavoriteStatus(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data map[string]bool `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Data[first.String()])
		assert.False(t, body.Data[second.String()])
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		h, _ := newFavoriteHandler(t)

		c, rec := newContext(http.MethodGet, "/api/favorites/status?ids="+first.String()+",nope")
		middleware.SetSession(c, session)
		require.NoError(t, h.FavoriteStatus(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "nope")
	})
}

func TestFavoriteHandler_AddFavorite_Duplicate(t *testing.T) {
	h, favoriteUC := newFavoriteHandler(t)
	session := &entity.Session{UserID: uuid.New(), Role: entity.RoleUser}
	recipeID := uuid.New()
	favoriteUC.EXPECT().AddFavorite(mock.Anything, session, recipeID).
		Return(nil, errors.WithStack(domainerrors.ErrFavoriteAlreadyExists)).Once()

	c, rec := newContext(http.MethodPost, "/")
	middleware.SetSession(c, session)
	c.SetParamNames("recipeId")
	c.SetParamValues(recipeID.String())
	require.NoError(t, h.AddFavorite(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "FAVORITE_ALREADY_EXISTS")
}
