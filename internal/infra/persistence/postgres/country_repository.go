// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
	"passport/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// countryRepository implements the repository.CountryRepository interface.
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{
		db: db,
	}
}

// List returns all countries ordered by name.
func (repo *countryRepository) List(ctx context.Context) ([]*entity.Country, error) {
	var countryModels []*model.CountryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&countryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for _, countryM := range countryModels {
		countries = append(countries, toCountryDomain(countryM))
	}

	return countries, nil
}

// FindByID retrieves a single country by its unique ID.
func (repo *countryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	var countryM model.CountryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&countryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to find country by ID")
	}

	return toCountryDomain(&countryM), nil
}

// FindByName retrieves a single country by its exact name.
func (repo *countryRepository) FindByName(ctx context.Context, name string) (*entity.Country, error) {
	var countryM model.CountryModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&countryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to find country by name")
	}

	return toCountryDomain(&countryM), nil
}

// Create persists a new country and returns the stored row.
func (repo *countryRepository) Create(ctx context.Context, input *entity.CountryInput) (*entity.Country, error) {
	if input.Name == nil || util.NullableText(*input.Name) == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	countryM := &model.CountryModel{
		Name:        *util.NullableText(*input.Name),
		FlagEmoji:   util.NilIfBlank(input.FlagEmoji),
		Description: util.NilIfBlank(input.Description),
		ImageURL:    util.NilIfBlank(input.ImageURL),
	}

	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		return nil, translateWriteError(err, repository.ErrDuplicateCountry, "failed to create country")
	}

	return toCountryDomain(countryM), nil
}

// Update writes the present fields of input and returns the stored row.
func (repo *countryRepository) Update(ctx context.Context, id uuid.UUID, input *entity.CountryInput) (*entity.Country, error) {
	updates := patch{}
	if input.Name != nil {
		if util.NullableText(*input.Name) == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		updates.text("name", input.Name)
	}
	updates.text("flag_emoji", input.FlagEmoji)
	updates.text("description", input.Description)
	updates.text("image_url", input.ImageURL)

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.CountryModel{}).
			Where("id = ?", id).
			Updates(map[string]any(updates))
		if result.Error != nil {
			return nil, translateWriteError(result.Error, repository.ErrDuplicateCountry, "failed to update country")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrCountryNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a country; its recipes are removed by the storage cascade.
func (repo *countryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CountryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete country")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCountryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCountryDomain converts a GORM CountryModel to a domain Country entity.
func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{
		ID:          data.ID,
		Name:        data.Name,
		FlagEmoji:   data.FlagEmoji,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}
