// Package mail implements the outbound mail transport over SMTP.
package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"

	"passport/config"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

// smtpSender is a concrete implementation of the MailSender interface backed
// by an SMTP client. The client holds the connection settings; each Send
// dials, delivers, and closes.
type smtpSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender is the constructor for smtpSender.
// It returns the implementation as a service.MailSender interface.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail transport must be configured")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
	}
	if cfg.Mail.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Mail.Username),
			gomail.WithPassword(cfg.Mail.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Mail.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpSender{
		client: client,
		from:   cfg.Mail.From,
	}, nil
}

// Send delivers a single plain-text message to the given recipient.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to deliver mail")
	}

	return nil
}
