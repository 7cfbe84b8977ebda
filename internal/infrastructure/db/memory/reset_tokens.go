package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

type resetEntry struct {
	username  string
	expiresAt time.Time
}

// ResetTokenRegistry is an in-memory registry of outstanding reset tokens.
// Expired entries are removed on the presentation attempt that finds them.
type ResetTokenRegistry struct {
	mu     sync.Mutex
	tokens map[string]resetEntry
	now    func() time.Time
}

func NewResetTokenRegistry() *ResetTokenRegistry {
	return &ResetTokenRegistry{
		tokens: make(map[string]resetEntry),
		now:    time.Now,
	}
}

func (r *ResetTokenRegistry) Save(_ context.Context, token, username string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = resetEntry{username: username, expiresAt: r.now().Add(ttl)}
	return nil
}

// Redeem removes the token and returns its username. The lookup, expiry
// check, and delete all happen under one lock so a token redeems at most once.
func (r *ResetTokenRegistry) Redeem(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.tokens[token]
	if !ok {
		return "", domain.ErrInvalidResetToken
	}

	delete(r.tokens, token)
	if r.now().After(entry.expiresAt) {
		return "", domain.ErrInvalidResetToken
	}
	return entry.username, nil
}

// Len reports the number of unexpired outstanding tokens.
func (r *ResetTokenRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	now := r.now()
	for _, e := range r.tokens {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}
