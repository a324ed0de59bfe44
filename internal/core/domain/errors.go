package domain

import "errors"

var (
	ErrInvalidTransition  = errors.New("invalid login flow transition")
	ErrCredentialMismatch = errors.New("invalid username or password")
	ErrAccountNotFound    = errors.New("no account found with that email")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already exists")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError is a user-facing input error. The caller stays in the
// same state and may retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
