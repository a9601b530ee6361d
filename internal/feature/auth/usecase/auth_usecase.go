package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

// dummyDigest is compared against when no account matches, so that an unknown
// CPF and a wrong password both cost one bcrypt evaluation.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountRepository abstracts the persistence layer for account entities.
// Following Go convention, the interface is defined by the consumer (usecase), not the provider (adapters).
type AccountRepository interface {
	// Create persists a new account and sets its ID.
	// It returns ErrAccountAlreadyExists if the CPF or the email is already taken.
	Create(ctx context.Context, account *entity.Account) error

	// FindByNationalID retrieves the account registered with the given CPF.
	// It returns ErrAccountNotFound if there is none.
	FindByNationalID(ctx context.Context, nationalID string) (*entity.Account, error)
}

// PasswordHasher hashes and verifies passwords with a salted one-way function.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare returns nil only if plaintext matches digest.
	Compare(digest, plaintext string) error
}

// TokenIssuer issues signed bearer tokens.
type TokenIssuer interface {
	Issue(accountID uint, nationalID string) (string, error)
}

// authUsecase implements the registration and login business logic.
type authUsecase struct {
	accounts AccountRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	now      func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(accounts AccountRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
	}
}

// Register validates the input, hashes the password and creates the account.
// No token is issued; the caller logs in separately.
func (u *authUsecase) Register(ctx context.Context, nationalID, email, password, birthDate string) (uint, error) {
	reg, err := validateRegistration(nationalID, email, password, birthDate, u.now())
	if err != nil {
		return 0, err
	}

	digest, err := u.hasher.Hash(reg.password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entity.Account{
		NationalID:     reg.nationalID,
		Email:          reg.email,
		PasswordDigest: digest,
		BirthDate:      reg.birthDate,
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, ErrAccountAlreadyExists) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("create account: %w: %w", domain.ErrStore, err)
	}
	return account.ID, nil
}

// Login authenticates the account and returns a signed token with the account on success.
// Unknown CPF and wrong password both yield domain.ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, nationalID, password string) (string, *entity.Account, error) {
	account, err := u.accounts.FindByNationalID(ctx, nationalID)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return "", nil, fmt.Errorf("find account: %w: %w", domain.ErrStore, err)
	}

	// bcrypt reads only the first maxPasswordBytes bytes, so a longer input
	// would match any stored password it starts with.
	tooLong := len(password) > maxPasswordBytes
	digest := dummyDigest
	if err == nil && !tooLong {
		digest = account.PasswordDigest
	}
	compareErr := u.hasher.Compare(digest, password)

	if err != nil || tooLong || compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(account.ID, account.NationalID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, account, nil
}
