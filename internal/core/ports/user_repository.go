package ports

import (
	"context"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

// UserRepository defines persistence operations for the credential store.
// Create must be an atomic compare-and-insert: concurrent registrations with
// the same username or email may not both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdatePasswordHash replaces the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, username, newHash string) error
}
