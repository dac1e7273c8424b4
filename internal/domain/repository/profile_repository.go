package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCredentialNotFound is returned when no credential matches an email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a profile by the user ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update writes the present fields of input and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, input *entity.ProfileInput) (*entity.Profile, error)

	// ListEmails returns the email address of every profile.
	ListEmails(ctx context.Context) ([]string, error)
}

// CredentialRepository stores email/password logins.
type CredentialRepository interface {
	// Create persists a new credential.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByEmail retrieves a credential by its lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindByUserID retrieves the credential owned by a profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// UpdatePassword replaces the stored hash for a user.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
