package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

// mockAccountRepository is a mock implementation of the AccountRepository interface.
type mockAccountRepository struct {
	CreateFunc           func(ctx context.Context, account *entity.Account) error
	FindByNationalIDFunc func(ctx context.Context, nationalID string) (*entity.Account, error)
	createCalls          int
}

func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	account.ID = 1
	return nil
}

func (m *mockAccountRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Account, error) {
	if m.FindByNationalIDFunc != nil {
		return m.FindByNationalIDFunc(ctx, nationalID)
	}
	return nil, ErrAccountNotFound
}

// bcryptHasher hashes with the minimum cost to keep tests fast.
type bcryptHasher struct {
	compareCalls int
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	return string(b), err
}

func (h *bcryptHasher) Compare(digest, plaintext string) error {
	h.compareCalls++
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	IssueFunc func(accountID uint, nationalID string) (string, error)
}

func (m *mockTokenIssuer) Issue(accountID uint, nationalID string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(accountID, nationalID)
	}
	return "mock-jwt-token", nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestUsecase(repo AccountRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	uc := NewAuthUsecase(repo, hasher, tokens)
	uc.now = fixedNow
	return uc
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration stores a bcrypt digest", func(t *testing.T) {
		var stored *entity.Account
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, account *entity.Account) error {
				stored = account
				account.ID = 42
				return nil
			},
		}
		uc := newTestUsecase(repo, &bcryptHasher{}, &mockTokenIssuer{})

		id, err := uc.Register(context.Background(), "12345678901", "a@b.com", "abcde", "1990-01-01")

		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
		require.NotNil(t, stored)
		assert.Equal(t, "12345678901", stored.NationalID)
		assert.Equal(t, "a@b.com", stored.Email)
		assert.NotEqual(t, "abcde", stored.PasswordDigest, "password is not hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordDigest), []byte("abcde")))
		assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), stored.BirthDate)
	})

	t.Run("duplicate account maps to conflict", func(t *testing.T) {
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, account *entity.Account) error {
				return ErrAccountAlreadyExists
			},
		}
		uc := newTestUsecase(repo, &bcryptHasher{}, &mockTokenIssuer{})

		_, err := uc.Register(context.Background(), "12345678901", "a@b.com", "abcde", "1990-01-01")

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("store failure keeps kind and cause", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, account *entity.Account) error {
				return dbErr
			},
		}
		uc := newTestUsecase(repo, &bcryptHasher{}, &mockTokenIssuer{})

		_, err := uc.Register(context.Background(), "12345678901", "a@b.com", "abcde", "1990-01-01")

		assert.ErrorIs(t, err, domain.ErrStore)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		tests := []struct {
			name      string
			cpf       string
			email     string
			password  string
			birthDate string
			wantErr   error
		}{
			{"missing cpf", "", "a@b.com", "abcde", "1990-01-01", domain.ErrMissingFields},
			{"missing email", "12345678901", "", "abcde", "1990-01-01", domain.ErrMissingFields},
			{"missing password", "12345678901", "a@b.com", "", "1990-01-01", domain.ErrMissingFields},
			{"missing birth date", "12345678901", "a@b.com", "abcde", "", domain.ErrMissingFields},
			{"four character password", "12345678901", "a@b.com", "abcd", "1990-01-01", domain.ErrPasswordTooShort},
			{"one character password", "12345678901", "a@b.com", "a", "1990-01-01", domain.ErrPasswordTooShort},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &mockAccountRepository{}
				uc := newTestUsecase(repo, &bcryptHasher{}, &mockTokenIssuer{})

				_, err := uc.Register(context.Background(), tt.cpf, tt.email, tt.password, tt.birthDate)

				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Zero(t, repo.createCalls, "store must not be called")
			})
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("abcde"), bcrypt.MinCost)
	require.NoError(t, err)
	testAccount := &entity.Account{
		ID:             7,
		NationalID:     "12345678901",
		Email:          "a@b.com",
		PasswordDigest: string(digest),
	}
	findTestAccount := func(ctx context.Context, nationalID string) (*entity.Account, error) {
		if nationalID == testAccount.NationalID {
			return testAccount, nil
		}
		return nil, ErrAccountNotFound
	}

	t.Run("successful login", func(t *testing.T) {
		repo := &mockAccountRepository{FindByNationalIDFunc: findTestAccount}
		tokens := &mockTokenIssuer{
			IssueFunc: func(accountID uint, nationalID string) (string, error) {
				assert.Equal(t, testAccount.ID, accountID)
				assert.Equal(t, testAccount.NationalID, nationalID)
				return "signed-token", nil
			},
		}
		uc := newTestUsecase(repo, &bcryptHasher{}, tokens)

		token, account, err := uc.Login(context.Background(), "12345678901", "abcde")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, testAccount, account)
	})

	t.Run("wrong password and unknown cpf are indistinguishable", func(t *testing.T) {
		hasher := &bcryptHasher{}
		repo := &mockAccountRepository{FindByNationalIDFunc: findTestAccount}
		uc := newTestUsecase(repo, hasher, &mockTokenIssuer{})

		_, _, wrongPassword := uc.Login(context.Background(), "12345678901", "wrong")
		_, _, unknownCPF := uc.Login(context.Background(), "99999999999", "abcde")

		assert.Equal(t, domain.ErrInvalidCredentials, wrongPassword)
		assert.Equal(t, domain.ErrInvalidCredentials, unknownCPF)
		assert.Equal(t, 2, hasher.compareCalls, "a digest comparison must run on both paths")
	})

	t.Run("input longer than the bcrypt limit never matches a truncated prefix", func(t *testing.T) {
		longPassword := strings.Repeat("x", 72)
		longDigest, err := bcrypt.GenerateFromPassword([]byte(longPassword), bcrypt.MinCost)
		require.NoError(t, err)
		account := &entity.Account{ID: 9, NationalID: "10987654321", PasswordDigest: string(longDigest)}

		hasher := &bcryptHasher{}
		repo := &mockAccountRepository{
			FindByNationalIDFunc: func(ctx context.Context, nationalID string) (*entity.Account, error) {
				return account, nil
			},
		}
		uc := newTestUsecase(repo, hasher, &mockTokenIssuer{})

		token, _, err := uc.Login(context.Background(), "10987654321", longPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		_, _, err = uc.Login(context.Background(), "10987654321", longPassword+"DIFFERENT-SUFFIX")
		assert.Equal(t, domain.ErrInvalidCredentials, err)
		assert.Equal(t, 2, hasher.compareCalls, "a digest comparison must still run")
	})

	t.Run("store failure is not reported as invalid credentials", func(t *testing.T) {
		repo := &mockAccountRepository{
			FindByNationalIDFunc: func(ctx context.Context, nationalID string) (*entity.Account, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := newTestUsecase(repo, &bcryptHasher{}, &mockTokenIssuer{})

		_, _, err := uc.Login(context.Background(), "12345678901", "abcde")

		assert.ErrorIs(t, err, domain.ErrStore)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("token issue failure", func(t *testing.T) {
		repo := &mockAccountRepository{FindByNationalIDFunc: findTestAccount}
		tokens := &mockTokenIssuer{
			IssueFunc: func(accountID uint, nationalID string) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}
		uc := newTestUsecase(repo, &bcryptHasher{}, tokens)

		_, _, err := uc.Login(context.Background(), "12345678901", "abcde")

		require.Error(t, err)
		assert.Equal(t, "failed to issue token: failed to sign token", err.Error())
	})
}

func TestDummyDigestIsValidBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyDigest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
