// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// accountGorm is a GORM implementation of the AccountRepository interface.
type accountGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure accountGorm implements AccountRepository.
var _ usecase.AccountRepository = (*accountGorm)(nil)

// NewAccountGorm creates a new instance of accountGorm.
// The connection should be opened with gorm.Config.TranslateError enabled.
func NewAccountGorm(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// Create inserts the account in a single statement.
// Uniqueness of CPF and email is enforced by the database; a violation returns
// usecase.ErrAccountAlreadyExists and writes nothing.
func (r *accountGorm) Create(ctx context.Context, account *entity.Account) error {
	if account == nil {
		return errors.New("account is nil")
	}
	model := AccountModelFromEntity(account)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrAccountAlreadyExists
		}
		return err
	}
	account.ID = model.ID
	account.CreatedAt = model.CreatedAt
	return nil
}

// FindByNationalID retrieves an account by CPF.
// It returns usecase.ErrAccountNotFound if none exists.
func (r *accountGorm) FindByNationalID(ctx context.Context, nationalID string) (*entity.Account, error) {
	var model AccountModel
	if err := r.db.WithContext(ctx).Where("cpf = ?", nationalID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
