package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCountryService(t *testing.T) (usecase.CountryUsecase, *mockRepo.MockCountryRepository, *mockRepo.MockProfileRepository) {
	countryRepo := mockRepo.NewMockCountryRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	service := NewCountryService(CountryServiceParams{
		CountryRepo: countryRepo,
		ProfileRepo: profileRepo,
		Logger:      newTestLogger(),
	})

	return service, countryRepo, profileRepo
}

func TestCountryService_CreateCountry(t *testing.T) {
	service, countryRepo, profileRepo := createTestCountryService(t)
	ctx := context.Background()
	session := newSession()
	input := &entity.CountryInput{Name: strPtr("Japan"), FlagEmoji: strPtr("🇯🇵")}

	expectRole(t, profileRepo, session, entity.RoleAdmin)
	countryRepo.EXPECT().Create(ctx, input).Return(&entity.Country{ID: uuid.New(), Name: "Japan"}, nil)

	country, err := service.CreateCountry(ctx, session, input)

	require.NoError(t, err)
	assert.Equal(t, "Japan", country.Name)
}

func TestCountryService_CreateCountry_Duplicate(t *testing.T) {
	service, countryRepo, profileRepo := createTestCountryService(t)
	ctx := context.Background()
	session := newSession()
	input := &entity.CountryInput{Name: strPtr("Japan")}

	expectRole(t, profileRepo, session, entity.RoleEditor)
	countryRepo.EXPECT().Create(ctx, input).Return(nil, repository.ErrDuplicateCountry)

	_, err := service.CreateCountry(ctx, session, input)

	require.ErrorIs(t, err, domainerrors.ErrCountryAlreadyExists)
}

func TestCountryService_CreateCountry_Unauthenticated(t *testing.T) {
	service, _, _ := createTestCountryService(t)

	_, err := service.CreateCountry(context.Background(), nil, &entity.CountryInput{Name: strPtr("Peru")})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCountryService_UpdateCountry_BlankName(t *testing.T) {
	service, _, _ := createTestCountryService(t)

	_, err := service.UpdateCountry(context.Background(), newSession(), uuid.New(), &entity.CountryInput{Name: strPtr("")})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCountryService_DeleteCountry_EditorForbidden(t *testing.T) {
	service, countryRepo, profileRepo := createTestCountryService(t)
	session := newSession()

	expectRole(t, profileRepo, session, entity.RoleEditor)

	err := service.DeleteCountry(context.Background(), session, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	countryRepo.AssertNotCalled(t, "Delete")
}

func TestCountryService_GetCountryByName(t *testing.T) {
	service, countryRepo, _ := createTestCountryService(t)
	ctx := context.Background()

	countryRepo.EXPECT().FindByName(ctx, "Italy").Return(nil, repository.ErrCountryNotFound)

	_, err := service.GetCountryByName(ctx, "  Italy ")
	require.ErrorIs(t, err, domainerrors.ErrCountryNotFound)

	_, err = service.GetCountryByName(ctx, " ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
