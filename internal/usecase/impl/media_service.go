package impl

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
	"passport/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxUploadBytes int64 = 5 << 20

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage     service.MediaStorage
	countryRepo repository.CountryRepository
	recipeRepo  repository.RecipeRepository
	gate        roleGate
	maxSize     int64
	now         func() time.Time
	logger      *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage     service.MediaStorage
	CountryRepo repository.CountryRepository
	RecipeRepo  repository.RecipeRepository
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) (usecase.MediaUsecase, error) {
	maxSize := defaultMaxUploadBytes
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadSize != "" {
		parsed, err := util.ParseBytes(params.Config.Storage.MaxUploadSize)
		if err != nil {
			return nil, errors.Wrap(err, "invalid storage.maxUploadSize")
		}
		maxSize = parsed
	}

	return &mediaService{
		storage:     params.Storage,
		countryRepo: params.CountryRepo,
		recipeRepo:  params.RecipeRepo,
		gate:        roleGate{profileRepo: params.ProfileRepo},
		maxSize:     maxSize,
		now:         time.Now,
		logger:      params.Logger,
	}, nil
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the file under the path derived from kind and owner and
// returns its public URL. An existing object at that path is overwritten.
func (srv *mediaService) Upload(ctx context.Context, file *entity.UploadFile, ownerID uuid.UUID, kind entity.MediaKind) (string, error) {
	if err := srv.validate(file, kind); err != nil {
		return "", err
	}

	return srv.put(ctx, file, ownerID, kind)
}

// AttachImage uploads first and then records the URL on the owner. If the
// update fails the uploaded object stays in the bucket unreferenced.
func (srv *mediaService) AttachImage(ctx context.Context, session *entity.Session, ownerID uuid.UUID, kind entity.MediaKind, file *entity.UploadFile) (*usecase.AttachImageOutput, error) {
	if err := srv.validate(file, kind); err != nil {
		return nil, err
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	url, err := srv.put(ctx, file, ownerID, kind)
	if err != nil {
		return nil, err
	}

	output := &usecase.AttachImageOutput{URL: url}

	switch kind {
	case entity.MediaRecipeImage:
		output.Recipe, err = srv.recipeRepo.Update(ctx, ownerID, &entity.RecipeInput{ImageURL: &url})
	case entity.MediaIngredientsImage:
		output.Recipe, err = srv.recipeRepo.Update(ctx, ownerID, &entity.RecipeInput{IngredientsImageURL: &url})
	case entity.MediaCountryFlag, entity.MediaCountryImage:
		output.Country, err = srv.countryRepo.Update(ctx, ownerID, &entity.CountryInput{ImageURL: &url})
	}
	if err != nil {
		srv.log(ctx).Warn("Image stored but owner update failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("kind", string(kind)),
			slog.String("url", url),
			slog.Any("error", err),
		)

		return nil, translateRepoError(err, "failed to attach image")
	}

	return output, nil
}

func (srv *mediaService) validate(file *entity.UploadFile, kind entity.MediaKind) error {
	if !kind.IsValid() {
		return validationError("unknown media kind")
	}
	if file == nil || file.Body == nil {
		return validationError("file is required")
	}
	if !file.IsImage() {
		return errors.WithStack(domainerrors.ErrInvalidImageType)
	}
	if file.Size > srv.maxSize {
		return validationError("file exceeds " + util.FormatBytes(srv.maxSize))
	}

	return nil
}

func (srv *mediaService) put(ctx context.Context, file *entity.UploadFile, ownerID uuid.UUID, kind entity.MediaKind) (string, error) {
	path := kind.ObjectPath(ownerID, file.Ext(), srv.now())

	if err := srv.storage.Put(ctx, path, file.Body, file.ContentType); err != nil {
		srv.log(ctx).Error("Image upload failed", slog.String("path", path), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed.WithDetails(err.Error()), "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded", slog.String("path", path), slog.Int64("size", file.Size))

	return srv.storage.PublicURL(path), nil
}
