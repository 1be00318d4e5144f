package service

import (
	"context"

	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/barelyrics/barelyrics-api/internal/validation"
	"github.com/rs/zerolog"
)

// contactService implements ContactService
type contactService struct {
	messages repository.ContactRepository
	log      zerolog.Logger
}

func newContactService(messages repository.ContactRepository, log zerolog.Logger) ContactService {
	return &contactService{
		messages: messages,
		log:      log.With().Str("component", "contact").Logger(),
	}
}

// Submit validates and persists a contact form message
func (s *contactService) Submit(ctx context.Context, in *models.ContactInput) (*models.ContactMessage, error) {
	if errs := validation.ValidateContact(in); len(errs) > 0 {
		return nil, &ValidationFailed{Errors: errs}
	}

	msg, err := s.messages.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to store contact message")
		return nil, err
	}

	s.log.Info().
		Int64("message_id", msg.ID).
		Str("subject", msg.Subject).
		Msg("Contact message received")
	return msg, nil
}
