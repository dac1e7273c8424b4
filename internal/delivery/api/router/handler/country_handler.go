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

// CountryHandlerParams holds dependencies for CountryHandler, injected by Fx.
type CountryHandlerParams struct {
	fx.In

	CountryUC usecase.CountryUsecase
	RecipeUC  usecase.RecipeUsecase
	Logger    *slog.Logger
}

// CountryHandler serves the country catalog and its admin endpoints.
type CountryHandler struct {
	countryUC usecase.CountryUsecase
	recipeUC  usecase.RecipeUsecase
	logger    *slog.Logger
}

// NewCountryHandler is the constructor for CountryHandler
func NewCountryHandler(params CountryHandlerParams) *CountryHandler {
	return &CountryHandler{
		countryUC: params.CountryUC,
		recipeUC:  params.RecipeUC,
		logger:    params.Logger,
	}
}

// ListCountries returns every country ordered by name.
func (h *CountryHandler) ListCountries(c echo.Context) error {
	countries, err := h.countryUC.ListCountries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, countries)
}

func (h *CountryHandler) GetCountry(c echo.Context) error {
	countryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid country ID")
	}

	country, err := h.countryUC.GetCountry(c.Request().Context(), countryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country)
}

// GetCountryByName looks a country up by its exact display name.
func (h *CountryHandler) GetCountryByName(c echo.Context) error {
	country, err := h.countryUC.GetCountryByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country)
}

// ListCountryRecipes returns the recipes of one country.
func (h *CountryHandler) ListCountryRecipes(c echo.Context) error {
	countryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid country ID")
	}

	recipes, err := h.recipeUC.ListRecipesByCountry(c.Request().Context(), countryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes)
}

func (h *CountryHandler) CreateCountry(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var input entity.CountryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}

	country, err := h.countryUC.CreateCountry(c.Request().Context(), session, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, country)
}

func (h *CountryHandler) UpdateCountry(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	countryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid country ID")
	}

	var input entity.CountryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}

	country, err := h.countryUC.UpdateCountry(c.Request().Context(), session, countryID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, country)
}

func (h *CountryHandler) DeleteCountry(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	countryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid country ID")
	}

	if err := h.countryUC.DeleteCountry(c.Request().Context(), session, countryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Country deleted successfully"})
}
