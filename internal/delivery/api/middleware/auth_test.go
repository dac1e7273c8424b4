package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/config"
	"passport/internal/domain/constants"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
	mockSvc "passport/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMiddleware(mw echo.MiddlewareFunc, header, value string) (*httptest.ResponseRecorder, *entity.Session, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		session *entity.Session
		called  bool
	)
	_ = mw(func(c echo.Context) error {
		called = true
		session, _ = GetSession(c)

		return c.NoContent(http.StatusNoContent)
	})(c)

	return rec, session, called
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		claims     *service.Claims
		claimsErr  error
		wantStatus int
		wantRole   entity.Role
	}{
		{
			name:       "valid access token",
			header:     "Bearer good",
			claims:     &service.Claims{UserID: userID, Email: "ada@example.com", Roles: []string{"editor"}, Type: "access"},
			wantStatus: http.StatusNoContent,
			wantRole:   entity.RoleEditor,
		},
		{
			name:       "unknown role falls back to user",
			header:     "Bearer good",
			claims:     &service.Claims{UserID: userID, Type: "access"},
			wantStatus: http.StatusNoContent,
			wantRole:   entity.RoleUser,
		},
		{
			name:       "refresh token rejected",
			header:     "Bearer good",
			claims:     &service.Claims{UserID: userID, Type: "refresh"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			claimsErr:  errors.New("token is expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if token, ok := cutBearer(tt.header); ok {
				tokenSvc.EXPECT().ValidateToken(token).Return(tt.claims, tt.claimsErr).Once()
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Config: &config.Config{}})

			var headerName string
			if tt.header != "" {
				headerName = echo.HeaderAuthorization
			}
			rec, session, called := runMiddleware(m.Authenticate, headerName, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusNoContent {
				assert.False(t, called)

				return
			}
			require.NotNil(t, session)
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, tt.wantRole, session.Role)
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("malformed")).Once()
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Config: &config.Config{}})

	rec, session, called := runMiddleware(m.OptionalAuth, echo.HeaderAuthorization, "Bearer bad")

	assert.True(t, called)
	assert.Nil(t, session)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_RequireCronSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		given      string
		wantCalled bool
	}{
		{name: "matching secret", secret: "s3cret", given: "s3cret", wantCalled: true},
		{name: "wrong secret", secret: "s3cret", given: "guess"},
		{name: "missing header", secret: "s3cret"},
		{name: "unset secret closes the endpoint", secret: "", given: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Cron: &config.CronConfig{Secret: tt.secret}}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockSvc.NewMockTokenService(t), Config: cfg})

			rec, _, called := runMiddleware(m.RequireCronSecret, constants.HeaderCronSecret, tt.given)

			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			}
		})
	}
}

func cutBearer(header string) (string, bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)

	return token, found && token != ""
}
