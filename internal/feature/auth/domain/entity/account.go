// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account represents a registered account in the system.
// Accounts are created once at registration and never updated or deleted.
type Account struct {
	// ID is the system-generated identifier assigned at creation.
	ID uint

	// NationalID is the 11-digit CPF used as the login identifier.
	// It is unique across all accounts.
	NationalID string

	// Email is the account's email address. It is unique across all accounts.
	Email string

	// PasswordDigest is the salted bcrypt digest of the password.
	// Plaintext passwords are never stored.
	PasswordDigest string

	// BirthDate is the calendar date of birth as provided at registration.
	BirthDate time.Time

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time
}
