// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"strings"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"

	"github.com/pkg/errors"
)

// roleGate checks catalog write permissions. The role is always re-read from
// the stored profile so a demotion takes effect on the next request.
type roleGate struct {
	profileRepo repository.ProfileRepository
}

func (g roleGate) role(ctx context.Context, session *entity.Session) (entity.Role, error) {
	if session == nil {
		return "", errors.WithStack(domainerrors.ErrUnauthorized)
	}

	profile, err := g.profileRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", errors.Wrap(domainerrors.ErrForbidden, "caller has no profile")
		}

		return "", errors.Wrap(err, "failed to load caller profile")
	}

	return profile.Role, nil
}

// requireEditor allows editors and admins.
func (g roleGate) requireEditor(ctx context.Context, session *entity.Session) error {
	role, err := g.role(ctx, session)
	if err != nil {
		return err
	}
	if !role.CanEdit() {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %q cannot edit content", role)
	}

	return nil
}

// requireAdmin allows admins only.
func (g roleGate) requireAdmin(ctx context.Context, session *entity.Session) error {
	role, err := g.role(ctx, session)
	if err != nil {
		return err
	}
	if !role.IsAdmin() {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %q cannot delete content", role)
	}

	return nil
}

// translateRepoError maps repository sentinels onto application errors and
// wraps everything else with op.
func translateRepoError(err error, op string) error {
	var target error

	switch {
	case errors.Is(err, repository.ErrCountryNotFound):
		target = domainerrors.ErrCountryNotFound
	case errors.Is(err, repository.ErrRecipeNotFound):
		target = domainerrors.ErrRecipeNotFound
	case errors.Is(err, repository.ErrIngredientNotFound):
		target = domainerrors.ErrIngredientNotFound
	case errors.Is(err, repository.ErrInstructionNotFound):
		target = domainerrors.ErrInstructionNotFound
	case errors.Is(err, repository.ErrBenefitNotFound):
		target = domainerrors.ErrBenefitNotFound
	case errors.Is(err, repository.ErrFavoriteNotFound):
		target = domainerrors.ErrFavoriteNotFound
	case errors.Is(err, repository.ErrProfileNotFound):
		target = domainerrors.ErrProfileNotFound
	case errors.Is(err, repository.ErrDuplicateCountry):
		target = domainerrors.ErrCountryAlreadyExists
	case errors.Is(err, repository.ErrDuplicateFavorite):
		target = domainerrors.ErrFavoriteAlreadyExists
	case errors.Is(err, repository.ErrDuplicateEmail):
		target = domainerrors.ErrUserAlreadyExists
	case errors.Is(err, repository.ErrInvalidReference):
		target = domainerrors.ErrInvalidReference
	default:
		return errors.Wrap(err, op)
	}

	return errors.Wrap(target, op)
}

func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// presentButBlank reports a field that was sent but carries no text.
func presentButBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
