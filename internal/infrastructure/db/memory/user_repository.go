// Package memory provides mutex-guarded in-process implementations of the
// credential store and reset-token registry. They back the service tests and
// dependency-free runs; production wiring uses the Mongo/Redis packages.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

// UserRepository is an in-memory credential store keyed by username.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

// Create inserts a user if neither the username nor the email is taken. The
// whole check-and-insert runs under one lock, matching the atomicity the
// Mongo unique indexes provide.
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domain.ErrDuplicateUsername
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	r.users[user.Username] = clone(user)
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) UpdatePasswordHash(_ context.Context, username, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = newHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func clone(u *domain.User) *domain.User {
	copy := *u
	return &copy
}
