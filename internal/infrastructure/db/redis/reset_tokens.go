package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

// ResetTokenRegistry tracks outstanding password-reset tokens in Redis.
// Keys are "reset:<token>" mapping to the username. Expiry is the key TTL,
// so expired tokens vanish without a sweeper; GETDEL makes redemption atomic,
// which guarantees single use under concurrent redeem attempts.
type ResetTokenRegistry struct {
	client *redis.Client
}

func NewResetTokenRegistry(client *redis.Client) *ResetTokenRegistry {
	return &ResetTokenRegistry{client: client}
}

// Save stores a token for username, expiring after ttl. Prior tokens for the
// same user are left untouched; each key lives its own lifetime.
func (r *ResetTokenRegistry) Save(ctx context.Context, token, username string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(token), username, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Redeem atomically removes the token and returns its username. Unknown and
// expired tokens fail identically.
func (r *ResetTokenRegistry) Redeem(ctx context.Context, token string) (string, error) {
	username, err := r.client.GetDel(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrInvalidResetToken
	}
	if err != nil {
		return "", fmt.Errorf("redeem reset token: %w", err)
	}
	return username, nil
}

func (r *ResetTokenRegistry) key(token string) string {
	return "reset:" + token
}
