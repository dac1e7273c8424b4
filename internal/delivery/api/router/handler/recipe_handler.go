package handler

import (
	"log/slog"
	"net/http"
	"time"

	"passport/internal/delivery/api/middleware"
	"passport/internal/delivery/api/response"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	DetailUC usecase.RecipeDetailUsecase
	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// RecipeHandler serves recipe reads, the detail bundle and recipe admin endpoints.
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	detailUC usecase.RecipeDetailUsecase
	searchUC usecase.SearchUsecase
	now      func() time.Time
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		detailUC: params.DetailUC,
		searchUC: params.SearchUC,
		now:      time.Now,
		logger:   params.Logger,
	}
}

// RecipeFullResponse is the detail bundle. PartialError is set when the
// recipe loaded but one of its collections did not.
type RecipeFullResponse struct {
	*usecase.RecipeBundle
	PartialError string `json:"partial_error,omitempty"`
}

// HomeRecipe returns the recipe of the day as a bare JSON object.
func (h *RecipeHandler) HomeRecipe(c echo.Context) error {
	ctx := c.Request().Context()

	recipe, err := h.recipeUC.RecipeOfTheDay(ctx, h.now())
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoRecipes) {
			return response.Message(c, http.StatusNotFound, "No recipes found")
		}

		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to pick recipe of the day", slog.Any("error", err))

		return response.Message(c, http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.recipeUC.ListRecipes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes)
}

// SearchRecipes matches ?q= against recipe names and descriptions. Signed-in
// callers get the query recorded in their history.
func (h *RecipeHandler) SearchRecipes(c echo.Context) error {
	session, _ := middleware.GetSession(c)

	recipes, err := h.searchUC.SearchRecipes(c.Request().Context(), session, c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	recipe, err := h.recipeUC.GetRecipe(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe)
}

// GetRecipeFull returns the recipe with its ingredients, instructions and
// benefits. A failed collection still yields 200 with partial_error set.
func (h *RecipeHandler) GetRecipeFull(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	bundle, err := h.detailUC.GetRecipeFull(c.Request().Context(), recipeID)
	if bundle == nil || bundle.Recipe == nil {
		if err == nil {
			err = errors.WithStack(domainerrors.ErrRecipeNotFound)
		}

		return response.HandleAppError(c, err)
	}

	body := RecipeFullResponse{RecipeBundle: bundle}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Serving partial recipe bundle",
			slog.String("recipe_id", recipeID.String()),
			slog.Any("error", err),
		)
		body.PartialError = partialErrorLabel(err)
	}

	return response.Success(c, http.StatusOK, body)
}

// partialErrorLabel never exposes the underlying driver or network error.
func partialErrorLabel(err error) string {
	var partial *usecase.PartialBundleError
	if errors.As(err, &partial) {
		return partial.Label()
	}

	return "some recipe details are unavailable"
}

// RecipeQRCode returns a PNG QR code of the recipe share link.
func (h *RecipeHandler) RecipeQRCode(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	png, err := h.recipeUC.RecipeQRCode(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var input entity.RecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	recipe, err := h.recipeUC.CreateRecipe(c.Request().Context(), session, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	var input entity.RecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	recipe, err := h.recipeUC.UpdateRecipe(c.Request().Context(), session, recipeID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	if err := h.recipeUC.DeleteRecipe(c.Request().Context(), session, recipeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recipe deleted successfully"})
}
