// Package service declares the ports the usecases need from infrastructure:
// credentials, tokens, media storage, QR codes and email transport.
package service

// PasswordHasher hashes and checks the passwords stored with a Credential.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength is applied at sign-up only. Existing
	// credentials are never re-validated on login.
	ValidatePasswordStrength(password string) error
}
