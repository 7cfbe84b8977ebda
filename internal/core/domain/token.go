package domain

import (
	"errors"
	"time"
)

// TokenKind discriminates the signed token types carried in the "type" claim.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

var (
	// ErrInvalidToken covers malformed input, bad signature, wrong kind, and
	// expiry. Callers cannot tell these apart; the distinction stays server-side.
	ErrInvalidToken = errors.New("could not validate credentials")

	// ErrInvalidResetToken covers unknown, expired, and already-redeemed reset
	// tokens uniformly.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// TokenPair is the credential bundle returned by login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // access token lifetime in seconds
}

// ResetToken is a single-use opaque credential proving control of a
// password-reset request. Tracked server-side until redeemed or expired.
type ResetToken struct {
	Token     string    `json:"token" bson:"token"`
	Username  string    `json:"username" bson:"username"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}
