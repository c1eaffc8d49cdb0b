package service

import "context"

// MailSender defines the interface for outbound transactional mail.
// This abstracts the transport (SMTP) from the use cases; delivery failures
// are returned to the caller, which decides whether they are fatal.
type MailSender interface {
	// Send delivers a single plain-text message to the given recipient.
	Send(ctx context.Context, to, subject, body string) error
}
