// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Error kinds surfaced by authentication operations.
// Upper layers map each kind to exactly one HTTP status.
var (
	// ErrValidation is the kind shared by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates that the CPF or the email is already registered.
	// It deliberately does not say which one.
	ErrConflict = errors.New("cpf or email already registered")

	// ErrInvalidCredentials is returned for an unknown CPF and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid cpf or password")

	// ErrStore indicates a persistence failure unrelated to uniqueness.
	ErrStore = errors.New("store failure")
)

// ValidationError describes malformed or missing input.
// Its message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports ErrValidation as the kind of every ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var (
	ErrMissingFields     = &ValidationError{Message: "all fields are required"}
	ErrPasswordTooShort  = &ValidationError{Message: "password must be at least 5 characters"}
	ErrPasswordTooLong   = &ValidationError{Message: "password must be at most 72 bytes"}
	ErrInvalidNationalID = &ValidationError{Message: "cpf must contain exactly 11 digits"}
	ErrInvalidEmail      = &ValidationError{Message: "email is invalid"}
	ErrInvalidBirthDate  = &ValidationError{Message: "dateOfBirth must be a past date in YYYY-MM-DD format"}
)
