package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// countryService implements the CountryUsecase interface.
type countryService struct {
	countryRepo repository.CountryRepository
	gate        roleGate
	logger      *slog.Logger
}

// CountryServiceParams holds dependencies for CountryService, injected by Fx.
type CountryServiceParams struct {
	fx.In

	CountryRepo repository.CountryRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewCountryService is the constructor for countryService.
func NewCountryService(params CountryServiceParams) usecase.CountryUsecase {
	return &countryService{
		countryRepo: params.CountryRepo,
		gate:        roleGate{profileRepo: params.ProfileRepo},
		logger:      params.Logger,
	}
}

func (srv *countryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *countryService) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := srv.countryRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list countries")
	}

	return countries, nil
}

func (srv *countryService) GetCountry(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	country, err := srv.countryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get country")
	}

	return country, nil
}

func (srv *countryService) GetCountryByName(ctx context.Context, name string) (*entity.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("name is required")
	}

	country, err := srv.countryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, translateRepoError(err, "failed to get country by name")
	}

	return country, nil
}

func (srv *countryService) CreateCountry(ctx context.Context, session *entity.Session, input *entity.CountryInput) (*entity.Country, error) {
	if input == nil || isBlank(input.Name) {
		return nil, validationError("name is required")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	country, err := srv.countryRepo.Create(ctx, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to create country")
	}

	srv.log(ctx).Info("Country created", slog.String("country_id", country.ID.String()), slog.String("name", country.Name))

	return country, nil
}

func (srv *countryService) UpdateCountry(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.CountryInput) (*entity.Country, error) {
	if input == nil {
		return nil, validationError("empty update")
	}
	if presentButBlank(input.Name) {
		return nil, validationError("name cannot be blank")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	country, err := srv.countryRepo.Update(ctx, id, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to update country")
	}

	return country, nil
}

// DeleteCountry removes the country; its recipes go with it through the storage cascade.
func (srv *countryService) DeleteCountry(ctx context.Context, session *entity.Session, id uuid.UUID) error {
	if err := srv.gate.requireAdmin(ctx, session); err != nil {
		return err
	}

	if err := srv.countryRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete country")
	}

	srv.log(ctx).Info("Country deleted", slog.String("country_id", id.String()))

	return nil
}
