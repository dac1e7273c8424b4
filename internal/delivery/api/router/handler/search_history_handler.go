package handler

import (
	"net/http"

	"passport/internal/delivery/api/middleware"
	"passport/internal/delivery/api/response"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHistoryHandlerParams holds dependencies for SearchHistoryHandler, injected by Fx.
type SearchHistoryHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
}

type SearchHistoryHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHistoryHandler is the constructor for SearchHistoryHandler
func NewSearchHistoryHandler(params SearchHistoryHandlerParams) *SearchHistoryHandler {
	return &SearchHistoryHandler{searchUC: params.SearchUC}
}

func (h *SearchHistoryHandler) ListHistory(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	history, err := h.searchUC.ListHistory(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

func (h *SearchHistoryHandler) ClearHistory(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	if err := h.searchUC.ClearHistory(c.Request().Context(), session); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Search history cleared successfully"})
}
