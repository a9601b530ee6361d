package adapters

import (
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// AccountModel is the GORM model for the users table.
type AccountModel struct {
	ID           uint      `gorm:"primaryKey"`
	CPF          string    `gorm:"column:cpf;uniqueIndex;size:11;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	DateOfBirth  time.Time `gorm:"column:date_of_birth;type:date;not null"`
	CreatedAt    time.Time
}

// TableName returns the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		NationalID:     m.CPF,
		Email:          m.Email,
		PasswordDigest: m.PasswordHash,
		BirthDate:      m.DateOfBirth,
		CreatedAt:      m.CreatedAt,
	}
}

// AccountModelFromEntity converts a domain entity to a GORM model.
func AccountModelFromEntity(a *entity.Account) *AccountModel {
	return &AccountModel{
		ID:           a.ID,
		CPF:          a.NationalID,
		Email:        a.Email,
		PasswordHash: a.PasswordDigest,
		DateOfBirth:  a.BirthDate,
		CreatedAt:    a.CreatedAt,
	}
}
