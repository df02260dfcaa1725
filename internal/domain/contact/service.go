package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
	"github.com/janhq/chat-server/internal/domain/validation"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
	"github.com/janhq/chat-server/pkg/telemetry"
)

// Service describes the contact use cases.
type Service interface {
	CreateContact(ctx context.Context, cmd CreateContactCommand) (Contact, error)
	UpdateContact(ctx context.Context, cmd UpdateContactCommand) (Contact, error)
	GetContact(ctx context.Context, id identifier.ID) (Contact, bool, error)
	ListContacts(ctx context.Context, opts repository.ListOptions) (int64, []Contact, error)
	DeleteContact(ctx context.Context, id identifier.ID) error
}

type service struct {
	repo      Repository
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

// NewService wires the contact service with its repository.
func NewService(repo Repository, sanitizer *telemetry.Sanitizer, log zerolog.Logger) Service {
	return &service{
		repo:      repo,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "contact-service").Logger(),
	}
}

func (s *service) CreateContact(ctx context.Context, cmd CreateContactCommand) (Contact, error) {
	if err := validation.Struct(ctx, cmd); err != nil {
		return Contact{}, err
	}

	if err := s.ensureEmailAvailable(ctx, cmd.Email, identifier.ID{}); err != nil {
		return Contact{}, err
	}

	created, err := s.repo.Create(ctx, New(cmd.Name, cmd.Email))
	if err != nil {
		return Contact{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create contact")
	}

	s.log.Info().
		Str("contact_id", created.ID.String()).
		Str("email", s.sanitizer.SanitizeEmail(created.Email)).
		Msg("contact created")
	return created, nil
}

func (s *service) UpdateContact(ctx context.Context, cmd UpdateContactCommand) (Contact, error) {
	if err := validation.Struct(ctx, cmd); err != nil {
		return Contact{}, err
	}

	existing, found, err := s.repo.Get(ctx, cmd.ID)
	if err != nil {
		return Contact{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load contact")
	}
	if !found {
		return Contact{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("Contact with id %s not found", cmd.ID), nil, "4a1c9e7d-2b6f-4d83-a0e5-7f3b1c8d2e94",
			map[string]any{"contact_id": cmd.ID.String()})
	}

	if cmd.Name != nil {
		existing.Name = *cmd.Name
	}
	if cmd.Email != nil && *cmd.Email != existing.Email {
		if err := s.ensureEmailAvailable(ctx, *cmd.Email, existing.ID); err != nil {
			return Contact{}, err
		}
		existing.Email = *cmd.Email
	}
	existing.UpdatedAt = repository.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return Contact{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update contact")
	}
	return existing, nil
}

func (s *service) GetContact(ctx context.Context, id identifier.ID) (Contact, bool, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListContacts(ctx context.Context, opts repository.ListOptions) (int64, []Contact, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) DeleteContact(ctx context.Context, id identifier.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("contact_id", id.String()).Msg("contact deleted")
	return nil
}

// ensureEmailAvailable fails with CONFLICT when email belongs to a contact other than owner.
// The check is not atomic; the storage layer backs it with a unique index.
func (s *service) ensureEmailAvailable(ctx context.Context, email string, owner identifier.ID) error {
	other, found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up contact by email")
	}
	if found && other.ID != owner {
		s.log.Warn().Str("email", s.sanitizer.SanitizeEmail(email)).Msg("duplicate contact email")
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
			fmt.Sprintf("Contact with email %s already exists", email), nil, "9d3e6b2a-5c81-4f07-b4a9-2e6d8c1f5a37")
	}
	return nil
}
