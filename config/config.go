// Package config provides configuration management for the portfolio service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Audit    AuditConfig
	Content  ContentConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow      time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	TokenRateLimit  int           `env:"TOKEN_RATE_LIMIT" envDefault:"5"`
	TokenRateWindow time.Duration `env:"TOKEN_RATE_WINDOW" envDefault:"1m"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	SwaggerUser     string        `env:"SWAGGER_USER"`
	SwaggerPass     string        `env:"SWAGGER_PASS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// AuthConfig holds the admin credential and token settings.
type AuthConfig struct {
	JWTSecretKey string        `env:"JWT_SECRET_KEY"`
	Password     string        `env:"PORTFOLIO_PASSWORD"`
	PasswordHash string        `env:"PORTFOLIO_PASSWORD_HASH"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"8h"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	DSN                string        `env:"PORTFOLIO_DB" envDefault:"host=localhost user=postgres password=postgres dbname=portfolio port=5432 sslmode=disable"`
	MaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime    time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	SlowQueryThreshold time.Duration `env:"DB_SLOW_QUERY_THRESHOLD" envDefault:"200ms"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	// CircuitBreaker configuration, shared with the audit store
	CircuitBreakerFailureThreshold int           `env:"CIRCUIT_BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	CircuitBreakerSuccessThreshold int           `env:"CIRCUIT_BREAKER_SUCCESS_THRESHOLD" envDefault:"2"`
	CircuitBreakerTimeout          time.Duration `env:"CIRCUIT_BREAKER_TIMEOUT" envDefault:"30s"`
}

// AuditConfig holds the optional MongoDB audit log configuration.
type AuditConfig struct {
	Enabled      bool          `env:"MONGODB_ENABLED" envDefault:"false"`
	URI          string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string        `env:"MONGODB_DATABASE" envDefault:"portfolio"`
	LogsTTL      time.Duration `env:"MONGODB_LOGS_TTL" envDefault:"720h"`
	// MaxPoolSize caps the audit writer's connections.
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"10"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"5s"`
}

// ContentConfig holds content rendering options.
type ContentConfig struct {
	// FallbackLanguage is used when an entity has no translation in the requested
	// language. Empty means missing translations are reported as not found.
	FallbackLanguage string `env:"CONTENT_FALLBACK_LANGUAGE"`
	// PageCacheTTL is how long a localized page is served from memory. Zero disables the cache.
	PageCacheTTL time.Duration `env:"CONTENT_PAGE_CACHE_TTL" envDefault:"5m"`
}

var (
	ErrMissingSecret     = errors.New("JWT_SECRET_KEY is required")
	ErrMissingPassword   = errors.New("PORTFOLIO_PASSWORD or PORTFOLIO_PASSWORD_HASH is required")
	ErrInvalidFallback   = errors.New("CONTENT_FALLBACK_LANGUAGE must be empty, en or pl")
	ErrInvalidRateLimits = errors.New("rate limits must be positive")
)

// Load creates a Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c Config) Validate() error {
	if c.Auth.JWTSecretKey == "" {
		return ErrMissingSecret
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return ErrMissingPassword
	}
	switch c.Content.FallbackLanguage {
	case "", "en", "pl":
	default:
		return ErrInvalidFallback
	}
	if c.Server.RateLimit <= 0 || c.Server.TokenRateLimit <= 0 {
		return ErrInvalidRateLimits
	}
	return nil
}
