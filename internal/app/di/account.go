// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "account_backend/internal/feature/auth/adapters"
	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/cache"
)

// NewAccountRepository creates the AccountRepository used by the auth usecase.
// If Redis is available, lookups by CPF are served through the Redis cache.
// Otherwise, the GORM repository is used directly.
func NewAccountRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.AccountRepository {
	repo := authadapters.NewAccountGorm(db)
	if rdb != nil {
		return cache.NewCachingAccountRepository(rdb, ttl, repo, "accounts")
	}
	return repo
}
