package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// UserUsecase defines the interface for user registration and login.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)
	ChangePassword(ctx context.Context, session *entity.Session, input *ChangePasswordInput) error
}

// --- Input DTOs ---

// SignUpInput defines the data required for email sign-up.
type SignUpInput struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required"`
	FullName   *string `json:"full_name"`
	AgeOrBirth *string `json:"age_or_birth"`
}

// LoginInput defines the data required for user login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries a refresh token issued by SignUp or Login.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordInput defines the data required to replace the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput defines the data returned after a successful sign-up or login.
type AuthOutput struct {
	Profile      *entity.Profile `json:"profile"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}
