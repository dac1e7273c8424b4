package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"passport/config"
	"passport/internal/delivery/api/response"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/constants"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	sessionKey      = "session"
	accessTokenType = "access"
	bearerPrefix    = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
}

// AuthMiddleware turns bearer tokens into a request-scoped entity.Session.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cronSecret string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{tokenSvc: params.TokenService}
	if params.Config != nil && params.Config.Cron != nil {
		m.cronSecret = params.Config.Cron.Secret
	}

	return m
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		session, ok := m.sessionFromHeader(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		attachSession(c, session)

		return next(c)
	}
}

// OptionalAuth attaches a session when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session, ok := m.sessionFromHeader(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
			attachSession(c, session)
		}

		return next(c)
	}
}

// RequireCronSecret guards scheduled endpoints with the shared X-Cron-Secret header.
// An unset secret closes the endpoint.
func (m *AuthMiddleware) RequireCronSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		given := c.Request().Header.Get(constants.HeaderCronSecret)
		if m.cronSecret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(m.cronSecret)) != 1 {
			return response.Unauthorized(c, "INVALID_CRON_SECRET", "Unauthorized")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) sessionFromHeader(authHeader string) (*entity.Session, bool) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Type != accessTokenType || claims.UserID == uuid.Nil {
		return nil, false
	}

	return &entity.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   entity.HighestRole(claims.Roles),
	}, true
}

// attachSession stores the session and tags the request logger with the caller.
func attachSession(c echo.Context, session *entity.Session) {
	c.Set(sessionKey, session)
	deliverycontext.AnnotateRequest(c, nil,
		slog.String("user_id", session.UserID.String()),
		slog.String("role", session.Role.String()),
	)
}

// GetSession returns the session set by Authenticate or OptionalAuth.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(sessionKey).(*entity.Session)

	return session, ok && session != nil
}

// SetSession stores a session on the context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(sessionKey, session)
}
