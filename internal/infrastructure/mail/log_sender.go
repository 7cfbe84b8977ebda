// Package mail holds MailSender implementations. Real deployments plug in a
// provider-backed sender; LogSender writes the reset link to the log, which
// is enough for development and keeps delivery an external concern.
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

// LogSender logs the reset link instead of sending an email. The token is the
// only secret in the message and lives in the log on purpose here; production
// senders must not log it.
type LogSender struct {
	baseURL string
	log     zerolog.Logger
}

// NewLogSender creates a LogSender. baseURL is the frontend reset page, e.g.
// "https://app.example.com/reset-password".
func NewLogSender(baseURL string, log zerolog.Logger) *LogSender {
	return &LogSender{baseURL: baseURL, log: log}
}

func (s *LogSender) SendPasswordReset(_ context.Context, email ports.ResetEmail) error {
	s.log.Info().
		Str("to", email.To).
		Str("reset_link", s.baseURL+"?token="+email.Token).
		Msg("password reset email")
	return nil
}
