package ports

import "context"

// ResetEmail is the job handed to the mail dispatcher after a reset token is
// issued.
type ResetEmail struct {
	To    string
	Token string
}

// MailSender delivers a password-reset email. Implementations are external
// collaborators; failures are logged by the dispatcher, never surfaced to the
// HTTP caller.
type MailSender interface {
	SendPasswordReset(ctx context.Context, email ResetEmail) error
}

// MailDispatcher accepts reset emails for asynchronous delivery off the
// request path. Enqueue must not block.
type MailDispatcher interface {
	Enqueue(email ResetEmail)
}
