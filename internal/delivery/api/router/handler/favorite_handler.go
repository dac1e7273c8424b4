package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"passport/internal/delivery/api/middleware"
	"passport/internal/delivery/api/response"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the saved recipes of the signed-in user.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites)
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), session, recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), session, recipeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite removed successfully"})
}

// ToggleFavorite flips the favorite flag. When the write fails the error
// envelope is returned and the stored flag is unchanged.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	output, err := h.favoriteUC.ToggleFavorite(c.Request().Context(), session, recipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// FavoriteStatus reports the flag of every recipe in ?ids=a,b,c.
func (h *FavoriteHandler) FavoriteStatus(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var recipeIDs []uuid.UUID
	for raw := range strings.SplitSeq(c.QueryParam("ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID: "+raw)
		}
		recipeIDs = append(recipeIDs, id)
	}

	status, err := h.favoriteUC.FavoriteStatus(c.Request().Context(), session, recipeIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
