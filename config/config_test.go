package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("PORTFOLIO_PASSWORD", "portfolio")
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 5, cfg.Server.TokenRateLimit)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
		assert.Contains(t, cfg.Database.DSN, "dbname=portfolio")
		assert.True(t, cfg.Database.AutoMigrate)
		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
		assert.False(t, cfg.Audit.Enabled)
		assert.Equal(t, 720*time.Hour, cfg.Audit.LogsTTL)
		assert.Equal(t, uint64(10), cfg.Audit.MaxPoolSize)
		assert.Equal(t, 5*time.Second, cfg.Audit.ConnectTimeout)
		assert.Empty(t, cfg.Content.FallbackLanguage)
		assert.Equal(t, 5*time.Minute, cfg.Content.PageCacheTTL)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		setRequired(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("CORS_ORIGINS", "https://portfolio.example,https://admin.example")
		t.Setenv("PORTFOLIO_DB", "host=db dbname=cv")
		t.Setenv("TOKEN_TTL", "1h")
		t.Setenv("MONGODB_ENABLED", "true")
		t.Setenv("CONTENT_FALLBACK_LANGUAGE", "en")
		t.Setenv("CONTENT_PAGE_CACHE_TTL", "0s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, []string{"https://portfolio.example", "https://admin.example"}, cfg.Server.CORSOrigins)
		assert.Equal(t, "host=db dbname=cv", cfg.Database.DSN)
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
		assert.True(t, cfg.Audit.Enabled)
		assert.Equal(t, "en", cfg.Content.FallbackLanguage)
		assert.Zero(t, cfg.Content.PageCacheTTL)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		os.Clearenv()
		setRequired(t)
		t.Setenv("RATE_WINDOW", "invalid")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{RateLimit: 10, TokenRateLimit: 1},
		Auth:   AuthConfig{JWTSecretKey: "secret", Password: "pw"},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"hash instead of password", func(c *Config) { c.Auth.Password = ""; c.Auth.PasswordHash = "$2a$10$x" }, nil},
		{"missing secret", func(c *Config) { c.Auth.JWTSecretKey = "" }, ErrMissingSecret},
		{"missing password", func(c *Config) { c.Auth.Password = "" }, ErrMissingPassword},
		{"polish fallback", func(c *Config) { c.Content.FallbackLanguage = "pl" }, nil},
		{"unsupported fallback", func(c *Config) { c.Content.FallbackLanguage = "de" }, ErrInvalidFallback},
		{"zero rate limit", func(c *Config) { c.Server.RateLimit = 0 }, ErrInvalidRateLimits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
