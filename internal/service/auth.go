package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/logger"
	"github.com/guttosm/portfolio-service/internal/metrics"
)

// AdminSubject is the only identity tokens are issued for.
const AdminSubject = "admin"

var (
	// ErrInvalidCredentials is returned when the username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService issues and validates admin bearer tokens.
type AuthService interface {
	IssueToken(ctx context.Context, username, password string) (*dto.TokenResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService for the single admin identity.
type AuthServiceImpl struct {
	secretKey    []byte
	passwordHash []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

// NewAuthService creates the auth service. A plain password from the config is
// hashed once here, so only the bcrypt hash is kept in memory.
func NewAuthService(cfg config.AuthConfig) (*AuthServiceImpl, error) {
	if cfg.JWTSecretKey == "" {
		return nil, config.ErrMissingSecret
	}

	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, config.ErrMissingPassword
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("PORTFOLIO_PASSWORD_HASH: %w", err)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &AuthServiceImpl{
		secretKey:    []byte(cfg.JWTSecretKey),
		passwordHash: hash,
		tokenTTL:     ttl,
		now:          time.Now,
	}, nil
}

// IssueToken checks the admin credential and returns a signed token.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(AdminSubject)) == 1
	// The hash is compared even when the username is wrong.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		metrics.RecordTokenIssued("rejected")
		logger.FromContext(ctx).Warn().Str("username", username).Msg("token request rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := s.sign(AdminSubject)
	if err != nil {
		metrics.RecordTokenIssued("error")
		return nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.RecordTokenIssued("issued")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken verifies signature, algorithm and expiry and returns the claims.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject != AdminSubject {
		return nil, ErrInvalidToken
	}
	return &dto.Claims{Subject: claims.Subject}, nil
}

func (s *AuthServiceImpl) sign(subject string) (string, error) {
	now := s.now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
