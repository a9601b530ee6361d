// Package config loads the process configuration from the environment once at startup.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"account_backend/internal/platform/db"
	"account_backend/internal/platform/redis"
)

// Config is the full process configuration.
type Config struct {
	// サーバー設定
	Port    string `env:"PORT" envDefault:"3000"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// JWTSecret signs every bearer token. There is no rotation.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// CORSAllowedOrigins lists allowed origins; "*" allows any.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	RunMigrations   bool          `env:"RUN_MIGRATIONS" envDefault:"false"`
	AccountCacheTTL time.Duration `env:"ACCOUNT_CACHE_TTL" envDefault:"24h"`

	DB    db.Config    `envPrefix:"DB_"`
	Redis redis.Config `envPrefix:"REDIS_"`
}

// Load reads an optional .env file and parses the environment into a Config.
// Variables already set in the process environment take precedence over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
