package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the profile of the signed-in user.
func (srv *profileService) GetProfile(ctx context.Context, session *entity.Session) (*entity.Profile, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	profile, err := srv.profileRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update. Blank values clear the field.
func (srv *profileService) UpdateProfile(ctx context.Context, session *entity.Session, input *entity.ProfileInput) (*entity.Profile, error) {
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if input == nil {
		return nil, validationError("empty update")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating profile", slog.String("user_id", session.UserID.String()))

	profile, err := srv.profileRepo.Update(ctx, session.UserID, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to update profile")
	}

	return profile, nil
}
