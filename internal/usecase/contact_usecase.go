package usecase

import (
	"context"

	"atelier/internal/domain/service"
)

// ContactUsecase defines the public contact-form operation.
type ContactUsecase interface {
	// SendMessage validates the submission and forwards it to the
	// studio inbox.
	SendMessage(ctx context.Context, msg *service.ContactMessage) error
}
