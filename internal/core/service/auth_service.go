package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindmetrics/prediction-api/internal/api/metrics"
	"github.com/mindmetrics/prediction-api/internal/core/domain"
	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

// AuthService implements the credential lifecycle: registration, login,
// token refresh, password reset, and profile resolution.
type AuthService struct {
	users     ports.UserRepository
	resets    ports.ResetTokenRegistry
	tokens    ports.TokenService
	mailer    ports.MailDispatcher
	accessTTL time.Duration
	resetTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	resets ports.ResetTokenRegistry,
	tokens ports.TokenService,
	mailer ports.MailDispatcher,
	accessTTL, resetTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if resetTTL <= 0 {
		resetTTL = 30 * time.Minute
	}
	return &AuthService{
		users:     users,
		resets:    resets,
		tokens:    tokens,
		mailer:    mailer,
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
		log:       log,
	}
}

// Register creates an active regular-user account. Uniqueness of username and
// email is enforced by the repository's atomic insert.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login authenticates a username/password pair and mints a token pair.
// Unknown usernames and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.Username)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access/refresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	username, err := s.tokens.Verify(refreshToken, domain.TokenRefresh)
	if err != nil {
		return nil, err
	}

	// The account must still exist; a deleted subject cannot mint new tokens.
	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return s.issuePair(username)
}

// ForgotPassword issues a reset token for the account behind email and hands
// delivery to the background mailer. Unknown emails create nothing and return
// nil so the HTTP layer can answer with the same generic message either way.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Msg("forgot-password for unknown email ignored")
			return nil
		}
		return err
	}

	token, err := s.tokens.NewResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.resets.Save(ctx, token, user.Username, s.resetTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	metrics.ResetTokensIssuedTotal.Inc()
	s.mailer.Enqueue(ports.ResetEmail{To: user.Email, Token: token})
	s.log.Info().Str("username", user.Username).Msg("reset token issued")
	return nil
}

// ResetPassword redeems a reset token and replaces the account's password
// hash. Redemption removes the token; replays fail like unknown tokens.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	username, err := s.resets.Redeem(ctx, token)
	if err != nil {
		metrics.ResetRedemptionsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, username, string(hash)); err != nil {
		return err
	}

	metrics.ResetRedemptionsTotal.WithLabelValues("redeemed").Inc()
	s.log.Info().Str("username", username).Msg("password reset")
	return nil
}

// CurrentUser resolves an access token to its account and enforces the active
// flag. This is the authorization gate behind every protected route.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	username, err := s.tokens.Verify(accessToken, domain.TokenAccess)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}

func (s *AuthService) issuePair(username string) (*domain.TokenPair, error) {
	access, err := s.tokens.IssueAccess(username)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(username)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.accessTTL.Seconds()),
	}, nil
}
