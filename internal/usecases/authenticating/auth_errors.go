package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserDisabled        = errors.New("user disabled")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrMissingRequiredData = errors.New("missing required data")
	ErrDatabaseOperation   = errors.New("database operation failed")
)

// AuthError pairs a sentinel error with the API error code and a
// human-readable detail for the response body.
type AuthError struct {
	Err     error
	Code    string
	Details string
	UserID  int
}

func (e *AuthError) Error() string {
	if e.UserID != 0 {
		return fmt.Sprintf("%s (user %d): %s", e.Err.Error(), e.UserID, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(err error, code, details string) *AuthError {
	return &AuthError{Err: err, Code: code, Details: details}
}

func NewUserAuthError(err error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: err, Code: code, UserID: userID, Details: details}
}
