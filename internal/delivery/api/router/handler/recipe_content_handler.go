package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/api/middleware"
	"passport/internal/delivery/api/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipeContentHandlerParams holds dependencies for RecipeContentHandler, injected by Fx.
type RecipeContentHandlerParams struct {
	fx.In

	ContentUC usecase.RecipeContentUsecase
	Logger    *slog.Logger
}

// RecipeContentHandler serves ingredients, instructions and nutrition benefits.
type RecipeContentHandler struct {
	contentUC usecase.RecipeContentUsecase
	logger    *slog.Logger
}

// NewRecipeContentHandler is the constructor for RecipeContentHandler
func NewRecipeContentHandler(params RecipeContentHandlerParams) *RecipeContentHandler {
	return &RecipeContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// --- Ingredients ---

func (h *RecipeContentHandler) ListIngredients(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	items, err := h.contentUC.ListIngredients(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *RecipeContentHandler) AddIngredient(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	var input entity.IngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}

	item, err := h.contentUC.AddIngredient(c.Request().Context(), session, recipeID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

func (h *RecipeContentHandler) UpdateIngredient(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient ID")
	}

	var input entity.IngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}

	item, err := h.contentUC.UpdateIngredient(c.Request().Context(), session, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

func (h *RecipeContentHandler) DeleteIngredient(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid ingredient ID")
	}

	if err := h.contentUC.DeleteIngredient(c.Request().Context(), session, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Ingredient deleted successfully"})
}

// --- Instructions ---

func (h *RecipeContentHandler) ListInstructions(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	items, err := h.contentUC.ListInstructions(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *RecipeContentHandler) AddInstruction(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	var input entity.InstructionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid instruction input")
	}

	item, err := h.contentUC.AddInstruction(c.Request().Context(), session, recipeID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

func (h *RecipeContentHandler) UpdateInstruction(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid instruction ID")
	}

	var input entity.InstructionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid instruction input")
	}

	item, err := h.contentUC.UpdateInstruction(c.Request().Context(), session, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

func (h *RecipeContentHandler) DeleteInstruction(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid instruction ID")
	}

	if err := h.contentUC.DeleteInstruction(c.Request().Context(), session, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Instruction deleted successfully"})
}

// --- Nutrition benefits ---

func (h *RecipeContentHandler) ListBenefits(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	items, err := h.contentUC.ListBenefits(c.Request().Context(), recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *RecipeContentHandler) AddBenefit(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	var input entity.NutritionBenefitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nutrition benefit input")
	}

	item, err := h.contentUC.AddBenefit(c.Request().Context(), session, recipeID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

func (h *RecipeContentHandler) UpdateBenefit(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid nutrition benefit ID")
	}

	var input entity.NutritionBenefitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nutrition benefit input")
	}

	item, err := h.contentUC.UpdateBenefit(c.Request().Context(), session, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

func (h *RecipeContentHandler) DeleteBenefit(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid nutrition benefit ID")
	}

	if err := h.contentUC.DeleteBenefit(c.Request().Context(), session, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Nutrition benefit deleted successfully"})
}
