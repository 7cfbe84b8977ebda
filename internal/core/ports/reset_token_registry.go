package ports

import (
	"context"
	"time"
)

// ResetTokenRegistry tracks outstanding password-reset tokens, keyed by the
// opaque token value. Tokens are single-use: Redeem must atomically remove
// the entry so that concurrent redemptions of the same token cannot both
// succeed.
type ResetTokenRegistry interface {
	// Save stores a token for username, expiring after ttl.
	Save(ctx context.Context, token, username string, ttl time.Duration) error
	// Redeem removes the token and returns its username.
	// Returns domain.ErrInvalidResetToken for unknown or expired tokens.
	Redeem(ctx context.Context, token string) (string, error)
}
