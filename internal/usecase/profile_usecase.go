package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, session *entity.Session) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, session *entity.Session, input *entity.ProfileInput) (*entity.Profile, error)
}
