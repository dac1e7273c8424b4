package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/internal/delivery/api/middleware"
	"passport/internal/delivery/api/validator"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
		output := &usecase.AuthOutput{
			Profile:     &entity.Profile{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser},
			AccessToken: "access",
		}
		userUC.EXPECT().SignUp(mock.Anything, mock.MatchedBy(func(in *usecase.SignUpInput) bool {
			return in.Email == "ada@example.com" && in.FullName != nil && *in.FullName == "Ada"
		})).Return(output, nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/signup",
			`{"email":"ada@example.com","password":"Str0ng!pass","full_name":"Ada"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
	})

	t.Run("invalid email never reaches the usecase", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})

		c, rec := newJSONContext(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"x"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		userUC.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
		userUC.EXPECT().SignUp(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to sign up")).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/signup", `{"email":"ada@example.com","password":"Str0ng!pass"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
	userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("new pair", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
		userUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh-1"}).
			Return(&usecase.AuthOutput{
				Profile:      &entity.Profile{ID: uuid.New(), Role: entity.RoleUser},
				AccessToken:  "access-2",
				RefreshToken: "refresh-2",
			}, nil).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh-1"}`)
		require.NoError(t, h.Refresh(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh-2"`)
	})

	t.Run("missing token never reaches the usecase", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{}`)
		require.NoError(t, h.Refresh(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		userUC.AssertNotCalled(t, "RefreshToken", mock.Anything, mock.Anything)
	})

	t.Run("rejected token", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
		userUC.EXPECT().RefreshToken(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidToken)).Once()

		c, rec := newJSONContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"access-token"}`)
		require.NoError(t, h.Refresh(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	session := &entity.Session{UserID: uuid.New(), Email: "cook@example.com", Role: entity.RoleUser}

	t.Run("updated", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
		userUC.EXPECT().ChangePassword(mock.Anything, session,
			&usecase.ChangePasswordInput{CurrentPassword: "OldPass123!", NewPassword: "NewPass456!"}).
			Return(nil).Once()

		c, rec := newJSONContext(http.MethodPut, "/api/me/password",
			`{"current_password":"OldPass123!","new_password":"NewPass456!"}`)
		middleware.SetSession(c, session)
		require.NoError(t, h.ChangePassword(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password updated successfully")
	})

	t.Run("anonymous", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})

		c, rec := newJSONContext(http.MethodPut, "/api/me/password", `{"current_password":"a","new_password":"b"}`)
		require.NoError(t, h.ChangePassword(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		userUC.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weak password", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: slog.New(slog.DiscardHandler)})
		userUC.EXPECT().ChangePassword(mock.Anything, session, mock.Anything).
			Return(errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails("too short"), "password does not meet security requirements")).Once()

		c, rec := newJSONContext(http.MethodPut, "/api/me/password", `{"current_password":"OldPass123!","new_password":"x"}`)
		middleware.SetSession(c, session)
		require.NoError(t, h.ChangePassword(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "PASSWORD_STRENGTH")
	})
}
