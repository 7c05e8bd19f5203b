// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidGoogleToken is returned when a Google ID token fails verification.
	ErrInvalidGoogleToken = errors.New("invalid google id token")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Sign-in errors (01XXXX)
	ErrCodeInvalidGoogleToken AuthErrorCode = "AUTH-010001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010004"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
