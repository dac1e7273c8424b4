package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds account data visible to the application. Its ID equals the user ID.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	FullName   *string   `json:"full_name"`
	AgeOrBirth *string   `json:"age_or_birth"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileInput is the partial update payload of a profile.
type ProfileInput struct {
	FullName   *string `json:"full_name"`
	AgeOrBirth *string `json:"age_or_birth"`
}

// Credential is the email/password login of a user.
type Credential struct {
	UserID       uuid.UUID // Links this credential to the profile it belongs to.
	Email        string    // Login identifier, stored lower-cased.
	PasswordHash string    // Bcrypt hash of the password.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// Session is the authenticated identity of a request. It lives for one request
// and is handed explicitly to every operation that needs the caller.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
