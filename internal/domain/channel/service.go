package channel

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
	"github.com/janhq/chat-server/internal/domain/validation"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

const (
	PrivateParticipantsMessage = "Private channels must have exactly 2 contacts"
	GroupParticipantsMessage   = "Group channels must have at least 1 contact"
)

// Service describes the channel use cases.
type Service interface {
	CreateChannel(ctx context.Context, cmd CreateChannelCommand) (Channel, error)
	GetChannel(ctx context.Context, id identifier.ID) (Channel, bool, error)
	ListChannels(ctx context.Context, opts repository.ListOptions) (int64, []Channel, error)
	FindContactChannels(ctx context.Context, contactID identifier.ID) ([]Channel, error)
}

type service struct {
	repo     Repository
	contacts contact.Repository
	log      zerolog.Logger
}

// NewService wires the channel service. Contacts are used to resolve participants.
func NewService(repo Repository, contacts contact.Repository, log zerolog.Logger) Service {
	return &service{
		repo:     repo,
		contacts: contacts,
		log:      log.With().Str("component", "channel-service").Logger(),
	}
}

func (s *service) CreateChannel(ctx context.Context, cmd CreateChannelCommand) (Channel, error) {
	if err := validation.Struct(ctx, cmd); err != nil {
		return Channel{}, err
	}

	participants := lo.Uniq(cmd.ParticipantIDs)
	switch cmd.Kind {
	case KindPrivate:
		// repeated ids are rejected, not collapsed
		if len(cmd.ParticipantIDs) != 2 || len(participants) != 2 {
			return Channel{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				PrivateParticipantsMessage, nil, "2e7a4c1f-9b3d-4e58-8f06-c5d1a9e3b742",
				map[string]any{"participant_count": len(cmd.ParticipantIDs)})
		}
	case KindGroup:
		if len(participants) == 0 {
			return Channel{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				GroupParticipantsMessage, nil, "7c5b1e9a-3d4f-4a26-b8e1-0f9d6c2a4b83")
		}
	}

	for _, id := range participants {
		if err := s.resolveContact(ctx, id); err != nil {
			return Channel{}, err
		}
	}

	if cmd.Kind == KindPrivate {
		existing, found, err := s.repo.FindPrivateChannel(ctx, participants)
		if err != nil {
			return Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up private channel")
		}
		if found {
			return Channel{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				fmt.Sprintf("Private channel between %s and %s already exists", participants[0], participants[1]), nil,
				"5f8d2a6c-1e7b-4c39-a4d0-b3e9f7c1d256", map[string]any{"channel_id": existing.ID.String()})
		}
	}

	created, err := s.repo.Create(ctx, New(cmd.Name, cmd.Kind, participants))
	if err != nil {
		return Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create channel")
	}

	s.log.Info().
		Str("channel_id", created.ID.String()).
		Str("kind", string(created.Kind)).
		Int("participants", len(created.ParticipantIDs)).
		Msg("channel created")
	return created, nil
}

func (s *service) GetChannel(ctx context.Context, id identifier.ID) (Channel, bool, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListChannels(ctx context.Context, opts repository.ListOptions) (int64, []Channel, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) FindContactChannels(ctx context.Context, contactID identifier.ID) ([]Channel, error) {
	return s.repo.FindByParticipantID(ctx, contactID)
}

func (s *service) resolveContact(ctx context.Context, id identifier.ID) error {
	_, found, err := s.contacts.Get(ctx, id)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to resolve participant")
	}
	if !found {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidReference,
			fmt.Sprintf("Contact with id %s not found", id), nil, "8b4f0d7e-6a2c-4b15-9e38-d1c7a5f0e369",
			map[string]any{"contact_id": id.String()})
	}
	return nil
}
