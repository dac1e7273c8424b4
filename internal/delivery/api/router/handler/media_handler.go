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

const uploadFormField = "file"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler accepts multipart image uploads for countries and recipes.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

func (h *MediaHandler) UploadCountryFlag(c echo.Context) error {
	return h.attach(c, entity.MediaCountryFlag, "Invalid country ID")
}

func (h *MediaHandler) UploadCountryImage(c echo.Context) error {
	return h.attach(c, entity.MediaCountryImage, "Invalid country ID")
}

func (h *MediaHandler) UploadRecipeImage(c echo.Context) error {
	return h.attach(c, entity.MediaRecipeImage, "Invalid recipe ID")
}

func (h *MediaHandler) UploadIngredientsImage(c echo.Context) error {
	return h.attach(c, entity.MediaIngredientsImage, "Invalid recipe ID")
}

func (h *MediaHandler) attach(c echo.Context, kind entity.MediaKind, invalidIDMessage string) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", invalidIDMessage)
	}

	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A file field is required")
	}

	src, err := header.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", slog.String("file", header.Filename), slog.Any("error", err))

		return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
	}
	defer src.Close()

	file := &entity.UploadFile{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        src,
	}

	output, err := h.mediaUC.AttachImage(c.Request().Context(), session, ownerID, kind, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
