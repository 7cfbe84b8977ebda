package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mindmetrics/prediction-api/internal/core/domain"
)

func TestResetTokenRegistry_RedeemIsSingleUse(t *testing.T) {
	reg := NewResetTokenRegistry()
	ctx := context.Background()

	if err := reg.Save(ctx, "tok-1", "alice", time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	username, err := reg.Redeem(ctx, "tok-1")
	if err != nil {
		t.Fatalf("first redeem: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %s", username)
	}

	if _, err := reg.Redeem(ctx, "tok-1"); err != domain.ErrInvalidResetToken {
		t.Fatalf("second redeem should fail, got %v", err)
	}
}

func TestResetTokenRegistry_UnknownToken(t *testing.T) {
	reg := NewResetTokenRegistry()

	if _, err := reg.Redeem(context.Background(), "never-issued"); err != domain.ErrInvalidResetToken {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
}

func TestResetTokenRegistry_ExpiredTokenIsRejectedAndRemoved(t *testing.T) {
	reg := NewResetTokenRegistry()
	ctx := context.Background()

	current := time.Now()
	reg.now = func() time.Time { return current }

	if err := reg.Save(ctx, "tok-exp", "alice", 30*time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	current = current.Add(31 * time.Minute)

	if _, err := reg.Redeem(ctx, "tok-exp"); err != domain.ErrInvalidResetToken {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
	// The expired entry was removed on the attempt that found it.
	if got := reg.Len(); got != 0 {
		t.Fatalf("expected empty registry, got %d", got)
	}
}

func TestResetTokenRegistry_MultipleOutstandingTokens(t *testing.T) {
	reg := NewResetTokenRegistry()
	ctx := context.Background()

	for _, token := range []string{"a", "b", "c"} {
		if err := reg.Save(ctx, token, "alice", time.Minute); err != nil {
			t.Fatalf("save %s: %v", token, err)
		}
	}
	if got := reg.Len(); got != 3 {
		t.Fatalf("expected 3 outstanding tokens, got %d", got)
	}

	if _, err := reg.Redeem(ctx, "b"); err != nil {
		t.Fatalf("redeem b: %v", err)
	}
	if _, err := reg.Redeem(ctx, "a"); err != nil {
		t.Fatalf("redeem a: %v", err)
	}
	if got := reg.Len(); got != 1 {
		t.Fatalf("expected 1 outstanding token, got %d", got)
	}
}

func TestResetTokenRegistry_ConcurrentRedeem(t *testing.T) {
	reg := NewResetTokenRegistry()
	ctx := context.Background()

	if err := reg.Save(ctx, "contested", "alice", time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	const goroutines = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Redeem(ctx, "contested"); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	if got := len(wins); got != 1 {
		t.Fatalf("expected exactly one winner, got %d", got)
	}
}
