package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrRecipeNotFound.WithDetails("id=42")

	assert.True(t, errors.Is(err, ErrRecipeNotFound))
	assert.False(t, errors.Is(err, ErrCountryNotFound))
	assert.Equal(t, "id=42", err.Details())
	assert.Equal(t, "Recipe not found: id=42", err.Error())
	assert.Empty(t, ErrRecipeNotFound.Details())
}

func TestAsAppError_Wrapped(t *testing.T) {
	appErr, ok := AsAppError(errors.Wrap(ErrForbidden, "delete recipe"))

	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(context.DeadlineExceeded, "list recipes")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "list recipes")
	assert.Equal(t, "list recipes", err.Details())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsAppError_PlainError(t *testing.T) {
	appErr, ok := AsAppError(errors.Wrap(errors.New("boom"), "list countries"))

	assert.False(t, ok)
	assert.Nil(t, appErr)
}
