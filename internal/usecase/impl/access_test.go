package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleGate(t *testing.T) {
	tests := []struct {
		name      string
		role      entity.Role
		editorErr error
		adminErr  error
	}{
		{name: "user", role: entity.RoleUser, editorErr: domainerrors.ErrForbidden, adminErr: domainerrors.ErrForbidden},
		{name: "editor", role: entity.RoleEditor, adminErr: domainerrors.ErrForbidden},
		{name: "admin", role: entity.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := mockRepo.NewMockProfileRepository(t)
			gate := roleGate{profileRepo: profileRepo}
			session := newSession()
			profileRepo.EXPECT().
				FindByID(context.Background(), session.UserID).
				Return(&entity.Profile{ID: session.UserID, Role: tt.role}, nil).
				Times(2)

			err := gate.requireEditor(context.Background(), session)
			if tt.editorErr != nil {
				require.ErrorIs(t, err, tt.editorErr)
			} else {
				require.NoError(t, err)
			}

			err = gate.requireAdmin(context.Background(), session)
			if tt.adminErr != nil {
				require.ErrorIs(t, err, tt.adminErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRoleGate_ReadsStoredRole(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	gate := roleGate{profileRepo: profileRepo}

	// The session claims admin but the stored profile was demoted.
	session := newSession()
	session.Role = entity.RoleAdmin
	expectRole(t, profileRepo, session, entity.RoleUser)

	err := gate.requireAdmin(context.Background(), session)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRoleGate_NoSessionOrProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	gate := roleGate{profileRepo: profileRepo}

	err := gate.requireEditor(context.Background(), nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	session := newSession()
	profileRepo.EXPECT().
		FindByID(context.Background(), session.UserID).
		Return(nil, repository.ErrProfileNotFound)

	err = gate.requireEditor(context.Background(), session)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTranslateRepoError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{repository.ErrCountryNotFound, domainerrors.ErrCountryNotFound},
		{repository.ErrRecipeNotFound, domainerrors.ErrRecipeNotFound},
		{repository.ErrIngredientNotFound, domainerrors.ErrIngredientNotFound},
		{repository.ErrInstructionNotFound, domainerrors.ErrInstructionNotFound},
		{repository.ErrBenefitNotFound, domainerrors.ErrBenefitNotFound},
		{repository.ErrFavoriteNotFound, domainerrors.ErrFavoriteNotFound},
		{repository.ErrProfileNotFound, domainerrors.ErrProfileNotFound},
		{repository.ErrDuplicateCountry, domainerrors.ErrCountryAlreadyExists},
		{repository.ErrDuplicateFavorite, domainerrors.ErrFavoriteAlreadyExists},
		{repository.ErrDuplicateEmail, domainerrors.ErrUserAlreadyExists},
		{repository.ErrInvalidReference, domainerrors.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.in.Error(), func(t *testing.T) {
			err := translateRepoError(errors.WithStack(tt.in), "op")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	raw := errors.New("connection reset")
	err := translateRepoError(raw, "op")
	assert.ErrorIs(t, err, raw)
	assert.Contains(t, err.Error(), "op")
}
