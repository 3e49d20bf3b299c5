// Package mail delivers contact-form submissions over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"atelier/config"
	"atelier/internal/domain/service"
	"atelier/internal/errors"
)

type smtpSender struct {
	client *gomail.Client
	from   string
	to     string
}

// NewSMTPSender builds the MailService on the configured SMTP account.
func NewSMTPSender(cfg *config.Config) (service.MailService, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is required")
	}

	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpSender{client: client, from: cfg.SMTP.Username, to: cfg.SMTP.To}, nil
}

func (s *smtpSender) SendContactMessage(ctx context.Context, msg *service.ContactMessage) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := m.To(s.to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		return errors.Wrap(err, "invalid reply-to address")
	}

	m.Subject(fmt.Sprintf("Mesaj nou de la %s", msg.Name))
	m.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("Nume: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message))

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrap(err, "failed to send contact message")
	}

	return nil
}
