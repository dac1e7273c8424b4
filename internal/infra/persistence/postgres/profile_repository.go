package postgres

import (
	"context"
	"strings"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by the user ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile and fills in the generated values.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return translateWriteError(err, repository.ErrDuplicateEmail, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.Role = entity.Role(profileM.Role)
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// Update writes the present fields of input and returns the stored row.
func (repo *profileRepository) Update(ctx context.Context, id uuid.UUID, input *entity.ProfileInput) (*entity.Profile, error) {
	updates := patch{}
	updates.text("full_name", input.FullName)
	updates.text("age_or_birth", input.AgeOrBirth)

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProfileModel{}).
			Where("id = ?", id).
			Updates(map[string]any(updates))
		if result.Error != nil {
			return nil, translateWriteError(result.Error, nil, "failed to update profile")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProfileNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// ListEmails returns the email address of every profile.
func (repo *profileRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("email <> ''").
		Order("created_at ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profile emails")
	}

	return emails, nil
}

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// Create persists a new credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := &model.CredentialModel{
		UserID:       credential.UserID,
		Email:        strings.ToLower(credential.Email),
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Omit("Profile").Create(credentialM).Error; err != nil {
		return translateWriteError(err, repository.ErrDuplicateEmail, "failed to create credential")
	}

	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindByEmail retrieves a credential by its lower-cased email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByUserID retrieves the credential owned by a profile.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return toCredentialDomain(&credentialM), nil
}

// UpdatePassword replaces the stored hash for a user.
func (repo *credentialRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:         data.ID,
		Email:      data.Email,
		Role:       entity.Role(data.Role),
		FullName:   data.FullName,
		AgeOrBirth: data.AgeOrBirth,
		CreatedAt:  data.CreatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleUser
	}

	return &model.ProfileModel{
		ID:         data.ID,
		Email:      strings.ToLower(data.Email),
		Role:       role.String(),
		FullName:   data.FullName,
		AgeOrBirth: data.AgeOrBirth,
		CreatedAt:  data.CreatedAt,
	}
}
