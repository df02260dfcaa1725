package message

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
	"github.com/janhq/chat-server/internal/domain/validation"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
	"github.com/janhq/chat-server/pkg/telemetry"
)

// Service describes the message use cases.
type Service interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (Message, error)
	ListChannelMessages(ctx context.Context, channelID identifier.ID, limit, offset int64) ([]Message, error)
}

type service struct {
	repo      Repository
	contacts  contact.Repository
	channels  channel.Repository
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

// NewService wires the message service. Sending may create a private channel
// through channels as a side effect. Content only reaches the log through sanitizer.
func NewService(repo Repository, contacts contact.Repository, channels channel.Repository, sanitizer *telemetry.Sanitizer, log zerolog.Logger) Service {
	return &service{
		repo:      repo,
		contacts:  contacts,
		channels:  channels,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "message-service").Logger(),
	}
}

func (s *service) SendMessage(ctx context.Context, cmd SendMessageCommand) (Message, error) {
	if err := validation.Struct(ctx, cmd); err != nil {
		return Message{}, err
	}
	if cmd.From == cmd.To {
		return Message{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"sender and recipient must be different contacts", nil, "3b9e7f1a-4c2d-4e86-a5b0-9d1f6e8c3a27")
	}

	for _, id := range []identifier.ID{cmd.From, cmd.To} {
		if err := s.resolveContact(ctx, id); err != nil {
			return Message{}, err
		}
	}

	var channelID identifier.ID
	if cmd.ChannelID != nil {
		ch, err := s.resolveChannel(ctx, *cmd.ChannelID)
		if err != nil {
			return Message{}, err
		}
		channelID = ch.ID
	} else {
		ch, err := s.privateChannel(ctx, cmd.From, cmd.To)
		if err != nil {
			return Message{}, err
		}
		channelID = ch.ID
	}

	created, err := s.repo.Create(ctx, New(channelID, cmd.From, cmd.To, cmd.Content))
	if err != nil {
		return Message{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to store message")
	}

	s.log.Debug().
		Str("message_id", created.ID.String()).
		Str("channel_id", channelID.String()).
		Str("content", s.sanitizer.SanitizeContent(created.Content)).
		Msg("message sent")
	return created, nil
}

func (s *service) ListChannelMessages(ctx context.Context, channelID identifier.ID, limit, offset int64) ([]Message, error) {
	_, found, err := s.channels.Get(ctx, channelID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load channel")
	}
	if !found {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("Channel with id %s not found", channelID), nil, "0e6c3a9f-7d1b-4f52-8c47-a2e5b9d1f068",
			map[string]any{"channel_id": channelID.String()})
	}

	if limit <= 0 {
		limit = repository.DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.FindByChannel(ctx, channelID, limit, offset)
}

// privateChannel returns the private channel of the pair, creating it when missing.
func (s *service) privateChannel(ctx context.Context, from, to identifier.ID) (channel.Channel, error) {
	pair := []identifier.ID{from, to}

	existing, found, err := s.channels.FindPrivateChannel(ctx, pair)
	if err != nil {
		return channel.Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up private channel")
	}
	if found {
		return existing, nil
	}

	created, err := s.channels.Create(ctx, channel.New(nil, channel.KindPrivate, pair))
	if err == nil {
		s.log.Info().Str("channel_id", created.ID.String()).Msg("private channel opened")
		return created, nil
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
		return channel.Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create private channel")
	}

	// a concurrent sender created the channel first
	existing, found, rerr := s.channels.FindPrivateChannel(ctx, pair)
	if rerr != nil {
		return channel.Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, rerr, "failed to look up private channel")
	}
	if !found {
		return channel.Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create private channel")
	}
	return existing, nil
}

func (s *service) resolveContact(ctx context.Context, id identifier.ID) error {
	_, found, err := s.contacts.Get(ctx, id)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to resolve contact")
	}
	if !found {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidReference,
			fmt.Sprintf("Contact with id %s not found", id), nil, "6d2a8f4c-0b9e-4a73-b1d5-e7c3f9a2d580",
			map[string]any{"contact_id": id.String()})
	}
	return nil
}

func (s *service) resolveChannel(ctx context.Context, id identifier.ID) (channel.Channel, error) {
	ch, found, err := s.channels.Get(ctx, id)
	if err != nil {
		return channel.Channel{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to resolve channel")
	}
	if !found {
		return channel.Channel{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidReference,
			fmt.Sprintf("Channel with id %s not found", id), nil, "c4f1b7e2-8a3d-4956-9e0c-5b2d7a1f8e63",
			map[string]any{"channel_id": id.String()})
	}
	return ch, nil
}
