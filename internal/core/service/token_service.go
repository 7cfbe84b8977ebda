package service

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindmetrics/prediction-api/internal/api/metrics"
	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

const (
	resetTokenLength   = 64
	resetTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// tokenClaims is the signed payload of access and refresh tokens.
type tokenClaims struct {
	Type domain.TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed access/refresh tokens and
// generates opaque reset tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// AccessTTL reports the configured access-token lifetime.
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *TokenService) IssueAccess(username string) (string, error) {
	return s.sign(username, domain.TokenAccess, s.accessTTL)
}

func (s *TokenService) IssueRefresh(username string) (string, error) {
	return s.sign(username, domain.TokenRefresh, s.refreshTTL)
}

func (s *TokenService) sign(username string, kind domain.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	metrics.TokensIssuedTotal.WithLabelValues(string(kind)).Inc()
	return signed, nil
}

// Verify decodes and validates a signed token of the expected kind. Every
// failure mode (malformed input, bad signature, expiry, wrong kind) maps to
// the same ErrInvalidToken so validation internals never leak to clients.
func (s *TokenService) Verify(token string, kind domain.TokenKind) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Type != kind || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

// NewResetToken returns a 64-character alphanumeric token from crypto/rand.
// Reset tokens are opaque registry keys, not signed structures.
func (s *TokenService) NewResetToken() (string, error) {
	max := big.NewInt(int64(len(resetTokenAlphabet)))
	buf := make([]byte, resetTokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = resetTokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
