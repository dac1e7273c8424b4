package postgres

import (
	"testing"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		assert func(t *testing.T, got error)
	}{
		{
			name: "gorm duplicated key",
			err:  gorm.ErrDuplicatedKey,
			assert: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, repository.ErrDuplicateFavorite)
			},
		},
		{
			name: "wrapped pg unique violation",
			err:  errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"),
			assert: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, repository.ErrDuplicateFavorite)
			},
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			assert: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, repository.ErrInvalidReference)
			},
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: "23514", Message: "servings must be positive"},
			assert: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, domainerrors.ErrValidationFailed)
			},
		},
		{
			name: "other failure",
			err:  errors.New("connection refused"),
			assert: func(t *testing.T, got error) {
				var appErr domainerrors.AppError
				assert.True(t, errors.As(got, &appErr))
				assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, translateWriteError(tt.err, repository.ErrDuplicateFavorite, "add favorite"))
		})
	}
}
