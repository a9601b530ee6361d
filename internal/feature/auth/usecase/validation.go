package usecase

import (
	"regexp"
	"time"
	"unicode/utf8"

	"account_backend/internal/feature/auth/domain"
)

const (
	// minPasswordLength is the minimum number of characters of a password.
	minPasswordLength = 5
	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72
	// birthDateLayout is the ISO calendar date format sent by the client.
	birthDateLayout = "2006-01-02"
)

var (
	nationalIDPattern = regexp.MustCompile(`^[0-9]{11}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// registration is a validated registration request.
type registration struct {
	nationalID string
	email      string
	password   string
	birthDate  time.Time
}

// validateRegistration checks presence first, then the password policy, then the shape of each field.
func validateRegistration(nationalID, email, password, birthDate string, now time.Time) (registration, error) {
	if nationalID == "" || email == "" || password == "" || birthDate == "" {
		return registration{}, domain.ErrMissingFields
	}
	if err := validatePassword(password); err != nil {
		return registration{}, err
	}
	if !nationalIDPattern.MatchString(nationalID) {
		return registration{}, domain.ErrInvalidNationalID
	}
	if !emailPattern.MatchString(email) {
		return registration{}, domain.ErrInvalidEmail
	}
	dob, err := time.Parse(birthDateLayout, birthDate)
	if err != nil || dob.After(now) {
		return registration{}, domain.ErrInvalidBirthDate
	}
	return registration{
		nationalID: nationalID,
		email:      email,
		password:   password,
		birthDate:  dob,
	}, nil
}

// validatePassword checks the password against the length policy.
func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return domain.ErrPasswordTooLong
	}
	return nil
}
