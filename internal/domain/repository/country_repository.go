// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for country persistence.
var (
	// ErrCountryNotFound is returned when a country is not found.
	ErrCountryNotFound = errors.New("country not found")
	// ErrDuplicateCountry is returned when a country name is already taken.
	ErrDuplicateCountry = errors.New("country already exists")
	// ErrInvalidReference is returned when a write points at a row that does not exist.
	ErrInvalidReference = errors.New("referenced row does not exist")
)

// CountryRepository defines the standard operations for country persistence.
type CountryRepository interface {
	// List returns all countries ordered by name.
	List(ctx context.Context) ([]*entity.Country, error)

	// FindByID retrieves a single country by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)

	// FindByName retrieves a single country by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Country, error)

	// Create persists a new country and returns the stored row.
	Create(ctx context.Context, input *entity.CountryInput) (*entity.Country, error)

	// Update writes the present fields of input and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, input *entity.CountryInput) (*entity.Country, error)

	// Delete removes a country; its recipes are removed by the storage cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
