package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeHandlerFixtures struct {
	handler  *RecipeHandler
	recipeUC *mockUC.MockRecipeUsecase
	detailUC *mockUC.MockRecipeDetailUsecase
	searchUC *mockUC.MockSearchUsecase
}

func createRecipeHandlerFixtures(t *testing.T) recipeHandlerFixtures {
	t.Helper()

	f := recipeHandlerFixtures{
		recipeUC: mockUC.NewMockRecipeUsecase(t),
		detailUC: mockUC.NewMockRecipeDetailUsecase(t),
		searchUC: mockUC.NewMockSearchUsecase(t),
	}
	f.handler = NewRecipeHandler(RecipeHandlerParams{
		RecipeUC: f.recipeUC,
		DetailUC: f.detailUC,
		SearchUC: f.searchUC,
		Logger:   slog.New(slog.DiscardHandler),
	})

	return f
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRecipeHandler_HomeRecipe(t *testing.T) {
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("returns the bare recipe", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)
		f.handler.now = func() time.Time { return now }
		recipe := &entity.Recipe{ID: uuid.New(), Name: "Jollof Rice"}
		f.recipeUC.EXPECT().RecipeOfTheDay(mock.Anything, now).Return(recipe, nil).Once()

		c, rec := newContext(http.MethodGet, "/api/home-recipe")
		require.NoError(t, f.handler.HomeRecipe(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Jollof Rice", body["name"])
		assert.NotContains(t, body, "data")
	})

	t.Run("empty catalog", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)
		f.handler.now = func() time.Time { return now }
		f.recipeUC.EXPECT().RecipeOfTheDay(mock.Anything, now).Return(nil, errors.WithStack(domainerrors.ErrNoRecipes)).Once()

		c, rec := newContext(http.MethodGet, "/api/home-recipe")
		require.NoError(t, f.handler.HomeRecipe(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"No recipes found"}`, rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)
		f.handler.now = func() time.Time { return now }
		f.recipeUC.EXPECT().RecipeOfTheDay(mock.Anything, now).Return(nil, errors.New("connection refused")).Once()

		c, rec := newContext(http.MethodGet, "/api/home-recipe")
		require.NoError(t, f.handler.HomeRecipe(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Server error"}`, rec.Body.String())
	})
}

func TestRecipeHandler_GetRecipeFull(t *testing.T) {
	recipeID := uuid.New()

	t.Run("partial bundle", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)
		bundle := &usecase.RecipeBundle{
			Recipe:       &entity.Recipe{ID: recipeID, Name: "Pho"},
			Ingredients:  []*entity.Ingredient{},
			Instructions: []*entity.Instruction{},
			Benefits:     []*entity.NutritionBenefit{},
		}
		childErr := &usecase.PartialBundleError{
			Collection: "nutrition benefits",
			Err:        errors.Wrap(errors.New("dial tcp 10.1.2.3:5432: connect: connection refused"), "failed to load nutrition benefits"),
		}
		f.detailUC.EXPECT().GetRecipeFull(mock.Anything, recipeID).Return(bundle, childErr).Once()

		c, rec := newContext(http.MethodGet, "/")
		c.SetParamNames("id")
		c.SetParamValues(recipeID.String())
		require.NoError(t, f.handler.GetRecipeFull(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data struct {
				Recipe       map[string]any `json:"recipe"`
				PartialError string         `json:"partial_error"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Pho", body.Data.Recipe["name"])
		assert.Equal(t, "nutrition benefits unavailable", body.Data.PartialError)
		assert.NotContains(t, rec.Body.String(), "10.1.2.3")
	})

	t.Run("unlabelled partial failure", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)
		bundle := &usecase.RecipeBundle{Recipe: &entity.Recipe{ID: recipeID, Name: "Pho"}}
		f.detailUC.EXPECT().GetRecipeFull(mock.Anything, recipeID).Return(bundle, errors.New("pq: password authentication failed")).Once()

		c, rec := newContext(http.MethodGet, "/")
		c.SetParamNames("id")
		c.SetParamValues(recipeID.String())
		require.NoError(t, f.handler.GetRecipeFull(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"partial_error":"some recipe details are unavailable"`)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("recipe missing", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)
		f.detailUC.EXPECT().GetRecipeFull(mock.Anything, recipeID).Return(nil, errors.WithStack(domainerrors.ErrRecipeNotFound)).Once()

		c, rec := newContext(http.MethodGet, "/")
		c.SetParamNames("id")
		c.SetParamValues(recipeID.String())
		require.NoError(t, f.handler.GetRecipeFull(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "RECIPE_NOT_FOUND")
	})

	t.Run("invalid id", func(t *testing.T) {
		f := createRecipeHandlerFixtures(t)

		c, rec := newContext(http.MethodGet, "/")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")
		require.NoError(t, f.handler.GetRecipeFull(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_ID")
	})
}

func TestRecipeHandler_RecipeQRCode(t *testing.T) {
	f := createRecipeHandlerFixtures(t)
	recipeID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	f.recipeUC.EXPECT().RecipeQRCode(mock.Anything, recipeID).Return(png, nil).Once()

	c, rec := newContext(http.MethodGet, "/")
	c.SetParamNames("id")
	c.SetParamValues(recipeID.String())
	require.NoError(t, f.handler.RecipeQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
