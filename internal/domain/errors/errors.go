// Package errors defines the application errors the API maps to HTTP responses.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error that knows how it is rendered to clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// BaseError is a predefined AppError. Copies made by WithDetails compare equal
// to the original under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying client-visible details.
func (e *BaseError) WithDetails(details string) *BaseError {
	dup := *e
	dup.details = details

	return &dup
}

// Account errors.
var (
	ErrUserAlreadyExists  = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrProfileNotFound    = newError(http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile not found")
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized       = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrInvalidToken       = newError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
	ErrForbidden          = newError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrPasswordHashFailed = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")
	ErrPasswordStrength   = newError(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password is too weak")
)

// Input errors.
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidImageType = newError(http.StatusBadRequest, "INVALID_IMAGE_TYPE", "Please select an image file")
	ErrInvalidReference = newError(http.StatusUnprocessableEntity, "INVALID_REFERENCE", "Referenced record does not exist")
)

// Catalog errors.
var (
	ErrCountryNotFound      = newError(http.StatusNotFound, "COUNTRY_NOT_FOUND", "Country not found")
	ErrCountryAlreadyExists = newError(http.StatusConflict, "COUNTRY_ALREADY_EXISTS", "A country with this name already exists")
	ErrRecipeNotFound       = newError(http.StatusNotFound, "RECIPE_NOT_FOUND", "Recipe not found")
	ErrNoRecipes            = newError(http.StatusNotFound, "NO_RECIPES", "No recipes found")
	ErrIngredientNotFound   = newError(http.StatusNotFound, "INGREDIENT_NOT_FOUND", "Ingredient not found")
	ErrInstructionNotFound  = newError(http.StatusNotFound, "INSTRUCTION_NOT_FOUND", "Instruction not found")
	ErrBenefitNotFound      = newError(http.StatusNotFound, "BENEFIT_NOT_FOUND", "Nutrition benefit not found")
)

// Favorite errors.
var (
	ErrFavoriteAlreadyExists = newError(http.StatusConflict, "FAVORITE_ALREADY_EXISTS", "Recipe is already in favorites")
	ErrFavoriteNotFound      = newError(http.StatusNotFound, "FAVORITE_NOT_FOUND", "Recipe is not in favorites")
)

// Outbound errors.
var (
	ErrUploadFailed = newError(http.StatusBadGateway, "UPLOAD_FAILED", "Image upload failed")
	ErrEmailFailed  = newError(http.StatusInternalServerError, "EMAIL_FAILED", "Email failed")
)

// DatabaseExecuteError hides a driver failure behind a generic 500.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError records which operation failed; the driver error
// is only logged.
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrapf(e.err, "database execution failed: %s", e.operation).Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
