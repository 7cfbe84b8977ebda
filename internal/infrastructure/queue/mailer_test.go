package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []ports.ResetEmail
	done chan struct{}
}

func newRecordingSender(expect int) *recordingSender {
	return &recordingSender{done: make(chan struct{}, expect)}
}

func (s *recordingSender) SendPasswordReset(_ context.Context, email ports.ResetEmail) error {
	s.mu.Lock()
	s.sent = append(s.sent, email)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *recordingSender) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func TestMailDispatcher_DeliversEnqueuedEmails(t *testing.T) {
	sender := newRecordingSender(2)
	d := NewMailDispatcher(2, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.ResetEmail{To: "alice@x.com", Token: "tok-a"})
	d.Enqueue(ports.ResetEmail{To: "bob@x.com", Token: "tok-b"})
	sender.wait(t, 2)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(sender.sent))
	}
	seen := map[string]bool{}
	for _, e := range sender.sent {
		seen[e.To] = true
	}
	if !seen["alice@x.com"] || !seen["bob@x.com"] {
		t.Fatalf("unexpected recipients: %+v", sender.sent)
	}
}

func TestMailDispatcher_SaturatedQueueDropsSilently(t *testing.T) {
	sender := newRecordingSender(0)
	// No workers started: the buffer fills and further jobs are dropped
	// without blocking the caller.
	d := NewMailDispatcher(1, sender, zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(ports.ResetEmail{To: "alice@x.com", Token: "t"})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a saturated queue")
	}
}

func TestMailDispatcher_StopsOnContextCancel(t *testing.T) {
	sender := newRecordingSender(1)
	d := NewMailDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(ports.ResetEmail{To: "alice@x.com", Token: "tok"})
	sender.wait(t, 1)

	cancel()
	// Give the worker a moment to observe cancellation, then verify a new
	// job is no longer picked up.
	time.Sleep(50 * time.Millisecond)
	d.Enqueue(ports.ResetEmail{To: "bob@x.com", Token: "tok2"})
	time.Sleep(50 * time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 {
		t.Fatalf("expected no deliveries after cancel, got %d", len(sender.sent))
	}
}
