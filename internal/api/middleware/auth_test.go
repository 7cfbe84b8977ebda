package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

type stubAuthService struct {
	currentFn func(ctx context.Context, accessToken string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	panic("not used")
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	panic("not used")
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error {
	panic("not used")
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	panic("not used")
}

func (s *stubAuthService) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	return s.currentFn(ctx, accessToken)
}

func newAuthContext(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuth_ValidTokenInjectsUser(t *testing.T) {
	alice := &domain.User{Username: "alice", IsActive: true}
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, accessToken string) (*domain.User, error) {
			if accessToken != "good-token" {
				t.Fatalf("unexpected token: %s", accessToken)
			}
			return alice, nil
		},
	}

	var seen *domain.User
	next := func(c echo.Context) error {
		seen, _ = c.Get(UserContextKey).(*domain.User)
		return nil
	}

	c := newAuthContext("Bearer good-token")
	if err := Auth(stub)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if seen != alice {
		t.Fatalf("expected user in context, got %+v", seen)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, accessToken string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	next := func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	}

	c := newAuthContext("")
	err := Auth(stub)(next)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, accessToken string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	next := func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	}

	for _, header := range []string{"good-token", "Basic abc123"} {
		c := newAuthContext(header)
		err := Auth(stub)(next)(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(ctx context.Context, accessToken string) (*domain.User, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	next := func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	}

	c := newAuthContext("Bearer stale-token")
	if err := Auth(stub)(next)(c); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken to propagate, got %v", err)
	}
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	c := newAuthContext("bearer lower-scheme")
	token, err := BearerToken(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "lower-scheme" {
		t.Fatalf("unexpected token: %s", token)
	}
}
