// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is 2^10 rounds, roughly tens of milliseconds per hash on current hardware.
const DefaultCost = bcrypt.DefaultCost

// maxInputBytes is the longest input bcrypt hashes without truncation.
const maxInputBytes = 72

// BcryptHasher hashes passwords with a random per-call salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost.
// Costs outside bcrypt's range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. The salt is embedded in the digest.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches digest in constant time.
// It returns bcrypt.ErrMismatchedHashAndPassword on mismatch and
// bcrypt.ErrPasswordTooLong for input bcrypt would silently truncate.
func (h *BcryptHasher) Compare(digest, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if len(plaintext) > maxInputBytes {
		return bcrypt.ErrPasswordTooLong
	}
	return err
}
