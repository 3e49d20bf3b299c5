package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"go.uber.org/fx"
)

type contactService struct {
	mail   service.MailService
	logger *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Mail   service.MailService
	Logger *slog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{mail: params.Mail, logger: params.Logger}
}

// SendMessage validates the submission and forwards it to the studio inbox
func (s *contactService) SendMessage(ctx context.Context, msg *service.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return domainerrors.ErrContactIncomplete
	}

	if err := s.mail.SendContactMessage(ctx, msg); err != nil {
		s.logger.Error("contact message delivery failed",
			slog.String("from", msg.Email),
			slog.Any("error", err),
		)

		return domainerrors.ErrContactSendFailed
	}

	return nil
}
