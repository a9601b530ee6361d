// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// Repository-level errors. Adapters translate driver errors into these.
var (
	// ErrAccountNotFound is returned when no account matches the given CPF.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when a CPF or email uniqueness constraint is violated.
	ErrAccountAlreadyExists = errors.New("account already exists")
)
