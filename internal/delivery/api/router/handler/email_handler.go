package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/api/response"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmailHandlerParams holds dependencies for EmailHandler, injected by Fx.
type EmailHandlerParams struct {
	fx.In

	EmailUC usecase.EmailUsecase
	Logger  *slog.Logger
}

// EmailHandler enqueues outgoing emails. Delivery happens in the mail worker.
type EmailHandler struct {
	emailUC usecase.EmailUsecase
	logger  *slog.Logger
}

// NewEmailHandler is the constructor for EmailHandler
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{
		emailUC: params.EmailUC,
		logger:  params.Logger,
	}
}

func (h *EmailHandler) SendEmail(c echo.Context) error {
	var input usecase.SendEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email data")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.emailUC.Send(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

func (h *EmailHandler) SendWelcomeEmail(c echo.Context) error {
	var input usecase.WelcomeEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email data")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.emailUC.SendWelcome(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// SendDailyRecipeEmail is triggered by the scheduler.
func (h *EmailHandler) SendDailyRecipeEmail(c echo.Context) error {
	output, err := h.emailUC.SendDailyRecipe(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
