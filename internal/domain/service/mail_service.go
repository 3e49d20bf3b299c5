package service

import "context"

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// MailService delivers contact-form submissions to the studio inbox.
type MailService interface {
	SendContactMessage(ctx context.Context, msg *ContactMessage) error
}
