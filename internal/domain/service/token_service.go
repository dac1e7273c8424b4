package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of access and refresh tokens. Roles carries the
// profile role at issue time; gated usecases re-read the stored role.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email,omitempty"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues the bearer tokens that back an entity.Session.
type TokenService interface {
	// GenerateTokens returns an access token and a longer lived refresh token.
	GenerateTokens(userID uuid.UUID, email string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies the signature and expiry. Callers check Type.
	ValidateToken(tokenString string) (*Claims, error)
}
