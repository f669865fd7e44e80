package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/portfolio-service/config"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestAuthService(t *testing.T) *AuthServiceImpl {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, err := NewAuthService(config.AuthConfig{
		JWTSecretKey: testSecret,
		PasswordHash: string(hash),
		TokenTTL:     8 * time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestNewAuthService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.AuthConfig
		expectedErr error
		wantErr     bool
	}{
		{
			name: "plain password is hashed",
			cfg:  config.AuthConfig{JWTSecretKey: testSecret, Password: "s3cret"},
		},
		{
			name:        "missing secret",
			cfg:         config.AuthConfig{Password: "s3cret"},
			expectedErr: config.ErrMissingSecret,
		},
		{
			name:        "missing password",
			cfg:         config.AuthConfig{JWTSecretKey: testSecret},
			expectedErr: config.ErrMissingPassword,
		},
		{
			name:    "malformed hash",
			cfg:     config.AuthConfig{JWTSecretKey: testSecret, PasswordHash: "not-a-bcrypt-hash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAuthService(tt.cfg)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, svc)
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, svc)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, []byte(tt.cfg.Password), svc.passwordHash)
				assert.Equal(t, 8*time.Hour, svc.tokenTTL)
			}
		})
	}
}

func TestAuthService_IssueToken(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid credential", username: "admin", password: "s3cret"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: true},
		{name: "wrong username", username: "root", password: "s3cret", wantErr: true},
		{name: "empty credential", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t)

			resp, err := svc.IssueToken(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bearer", resp.TokenType)
			assert.Equal(t, int64(8*60*60), resp.ExpiresIn)

			claims, err := svc.ValidateToken(context.Background(), resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, AdminSubject, claims.Subject)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc := newTestAuthService(t)
	issuedAt := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	resp, err := svc.IssueToken(context.Background(), "admin", "s3cret")
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr bool
	}{
		{
			name:  "valid before expiry",
			token: resp.AccessToken,
			now:   issuedAt.Add(7 * time.Hour),
		},
		{
			name:    "expired after ttl",
			token:   resp.AccessToken,
			now:     issuedAt.Add(8*time.Hour + time.Second),
			wantErr: true,
		},
		{
			name:    "malformed",
			token:   "not.a.token",
			now:     issuedAt,
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: sign(jwt.SigningMethodHS256, []byte("other-secret"), jwt.RegisteredClaims{
				Subject:   AdminSubject,
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			}),
			now:     issuedAt,
			wantErr: true,
		},
		{
			name: "other algorithm",
			token: sign(jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   AdminSubject,
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			}),
			now:     issuedAt,
			wantErr: true,
		},
		{
			name: "no expiry",
			token: sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject: AdminSubject,
			}),
			now:     issuedAt,
			wantErr: true,
		},
		{
			name: "other subject",
			token: sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   "guest",
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			}),
			now:     issuedAt,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.now }

			claims, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, AdminSubject, claims.Subject)
		})
	}
}
