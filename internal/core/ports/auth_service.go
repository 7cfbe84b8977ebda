package ports

import (
	"context"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time. Role and
// is_active are not caller-controlled: new accounts are active regular users.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// AuthService defines the credential-lifecycle use cases exposed by the API.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	// Refresh validates a refresh token and mints a new access/refresh pair.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// ForgotPassword issues a reset token for the account behind email and
	// hands it to the mail dispatcher. Unknown emails are a silent no-op so
	// the caller's response never reveals whether an account exists.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	// CurrentUser resolves an access token to its active account.
	CurrentUser(ctx context.Context, accessToken string) (*domain.User, error)
}
