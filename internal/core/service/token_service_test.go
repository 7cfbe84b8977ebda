package service

import (
	"strings"
	"testing"
	"time"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

func TestTokenService_IssueAndVerifyAccess(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	token, err := svc.IssueAccess("alice")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	username, err := svc.Verify(token, domain.TokenAccess)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %s", username)
	}
}

func TestTokenService_KindMismatch(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	access, err := svc.IssueAccess("alice")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	refresh, err := svc.IssueRefresh("alice")
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	if _, err := svc.Verify(access, domain.TokenRefresh); err != domain.ErrInvalidToken {
		t.Fatalf("access token accepted as refresh: %v", err)
	}
	if _, err := svc.Verify(refresh, domain.TokenAccess); err != domain.ErrInvalidToken {
		t.Fatalf("refresh token accepted as access: %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Millisecond, 7*24*time.Hour)

	token, err := svc.IssueAccess("alice")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Verify(token, domain.TokenAccess); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, 7*24*time.Hour)
	verifier := NewTokenService("secret-b", time.Hour, 7*24*time.Hour)

	token, err := issuer.IssueAccess("alice")
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	if _, err := verifier.Verify(token, domain.TokenAccess); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token, domain.TokenAccess); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_NewResetToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	token, err := svc.NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken returned error: %v", err)
	}
	if len(token) != resetTokenLength {
		t.Fatalf("expected %d characters, got %d", resetTokenLength, len(token))
	}
	for _, ch := range token {
		if !strings.ContainsRune(resetTokenAlphabet, ch) {
			t.Fatalf("token contains character outside alphabet: %q", ch)
		}
	}

	other, err := svc.NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken returned error: %v", err)
	}
	if token == other {
		t.Fatalf("two reset tokens were identical")
	}
}
