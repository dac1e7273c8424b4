package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newTestLogger())
	ctx := context.Background()
	session := newSession()

	profileRepo.EXPECT().FindByID(ctx, session.UserID).Return(&entity.Profile{ID: session.UserID, Role: entity.RoleUser}, nil)

	profile, err := service.GetProfile(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, session.UserID, profile.ID)
}

func TestProfileService_GetProfile_Missing(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newTestLogger())
	ctx := context.Background()
	session := newSession()

	profileRepo.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrProfileNotFound)

	_, err := service.GetProfile(ctx, session)

	require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newTestLogger())
	ctx := context.Background()
	session := newSession()
	input := &entity.ProfileInput{FullName: strPtr("Ada"), AgeOrBirth: strPtr("")}

	profileRepo.EXPECT().Update(ctx, session.UserID, input).Return(&entity.Profile{ID: session.UserID, FullName: strPtr("Ada")}, nil)

	profile, err := service.UpdateProfile(ctx, session, input)

	require.NoError(t, err)
	assert.Equal(t, "Ada", *profile.FullName)
	assert.Nil(t, profile.AgeOrBirth)

	_, err = service.UpdateProfile(ctx, nil, input)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
