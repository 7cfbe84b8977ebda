package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// MailDispatcher delivers password-reset emails off the request path. Enqueue
// never blocks the caller: forgot-password must answer immediately regardless
// of notification latency or failure.
type MailDispatcher struct {
	jobs   chan ports.ResetEmail
	sender ports.MailSender
	count  int
	log    zerolog.Logger
}

// NewMailDispatcher creates a dispatcher with numWorkers delivery goroutines.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, sender ports.MailSender, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &MailDispatcher{
		jobs:   make(chan ports.ResetEmail, channelBuffer),
		sender: sender,
		count:  numWorkers,
		log:    log,
	}
}

// Start launches the delivery workers. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.count; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands an email to the workers. When the buffer is saturated the job
// is dropped with a warning; delivery is fire-and-forget by contract.
func (d *MailDispatcher) Enqueue(email ports.ResetEmail) {
	select {
	case d.jobs <- email:
	default:
		d.log.Warn().Msg("mail queue saturated, reset email dropped")
	}
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-d.jobs:
			if !ok {
				return
			}
			if err := d.sender.SendPasswordReset(ctx, job); err != nil {
				d.log.Error().Err(err).
					Int("worker_id", id).
					Msg("reset email delivery failed")
			}
		}
	}
}
