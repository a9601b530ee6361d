// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

// CachingAccountRepository decorates an AccountRepository with Redis caching.
// Accounts are never updated or deleted, so cached entries need no invalidation.
// Only hits are cached; a miss must not hide a later registration.
//
// Login compares against the stored digest, so each entry holds the bcrypt
// password digest next to the CPF and email for the TTL. The Redis instance
// must be treated with the same access controls as the database.
type CachingAccountRepository struct {
	inner     usecase.AccountRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// cachedAccount is the Redis record. Its layout is independent of entity.Account.
type cachedAccount struct {
	ID             uint      `json:"id"`
	NationalID     string    `json:"cpf"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"password_digest"`
	BirthDate      time.Time `json:"date_of_birth"`
	CreatedAt      time.Time `json:"created_at"`
}

func toCachedAccount(a *entity.Account) cachedAccount {
	return cachedAccount{
		ID:             a.ID,
		NationalID:     a.NationalID,
		Email:          a.Email,
		PasswordDigest: a.PasswordDigest,
		BirthDate:      a.BirthDate,
		CreatedAt:      a.CreatedAt,
	}
}

func (r cachedAccount) toEntity() *entity.Account {
	return &entity.Account{
		ID:             r.ID,
		NationalID:     r.NationalID,
		Email:          r.Email,
		PasswordDigest: r.PasswordDigest,
		BirthDate:      r.BirthDate,
		CreatedAt:      r.CreatedAt,
	}
}

// Compile-time check to ensure CachingAccountRepository implements AccountRepository.
var _ usecase.AccountRepository = (*CachingAccountRepository)(nil)

// NewCachingAccountRepository decorates an AccountRepository with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "accounts".
func NewCachingAccountRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AccountRepository, namespace string) *CachingAccountRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "accounts"
	}
	return &CachingAccountRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create always writes through to the underlying repository.
func (c *CachingAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return c.inner.Create(ctx, account)
}

// FindByNationalID checks the cache first, then falls back to the database.
func (c *CachingAccountRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Account, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByNationalID(ctx, nationalID)
	}

	key := c.cacheKey(nationalID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var rec cachedAccount
		if err := json.Unmarshal(b, &rec); err == nil && rec.NationalID == nationalID {
			return rec.toEntity(), nil
		}
		// Delete corrupted or mismatched cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && err != redis.Nil {
		slog.Warn("account cache read failed", "error", err)
	}

	// 2) Fallback to database
	out, err := c.inner.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(toCachedAccount(out)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a CPF.
func (c *CachingAccountRepository) cacheKey(nationalID string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(nationalID))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
