package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "abc"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"abc"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusConflict, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "some detail"))

			body := decodeError(t, rec)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, "some detail", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("wrapped app error", func(t *testing.T) {
		c, rec := newContext()
		err := pkgerrors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to sign up")

		require.NoError(t, HandleAppError(c, err))

		body := decodeError(t, rec)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("details are forwarded", func(t *testing.T) {
		c, rec := newContext()
		err := domainerrors.ErrPasswordStrength.WithDetails("too short")

		require.NoError(t, HandleAppError(c, err))

		body := decodeError(t, rec)
		assert.Equal(t, "too short", body.Error.Details)
	})

	t.Run("plain error is returned", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, pkgerrors.New("boom"))

		require.Error(t, err)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, http.StatusNotFound, "No recipes found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No recipes found"}`, rec.Body.String())
}
