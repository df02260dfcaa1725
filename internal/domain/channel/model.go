package channel

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// Kind tells private conversations apart from groups.
type Kind string

const (
	KindPrivate Kind = "private"
	KindGroup   Kind = "group"
)

// Channel is a conversation between contacts.
type Channel struct {
	ID             identifier.ID   `json:"id"`
	Name           *string         `json:"name,omitempty"`
	Kind           Kind            `json:"kind"`
	ParticipantIDs []identifier.ID `json:"participant_ids"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// EntityID implements repository.Entity.
func (c Channel) EntityID() identifier.ID {
	return c.ID
}

// ParticipantKey is the canonical form of the channel's participant set.
func (c Channel) ParticipantKey() string {
	return ParticipantKey(c.ParticipantIDs)
}

// New builds a channel with a fresh text id. The participant list is copied
// and duplicates are dropped.
func New(name *string, kind Kind, participantIDs []identifier.ID) Channel {
	now := repository.Now()
	return Channel{
		ID:             identifier.NewText(),
		Name:           name,
		Kind:           kind,
		ParticipantIDs: lo.Uniq(participantIDs),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ParticipantKey returns the sorted, comma separated canonical ids of a
// participant set. Two sets produce the same key exactly when they hold the
// same ids, whatever their order.
func ParticipantKey(ids []identifier.ID) string {
	keys := lo.Uniq(lo.Map(ids, func(id identifier.ID, _ int) string {
		return id.String()
	}))
	slices.Sort(keys)
	return strings.Join(keys, ",")
}

// CreateChannelCommand carries the input of Service.CreateChannel.
type CreateChannelCommand struct {
	Name           *string         `json:"name,omitempty"`
	Kind           Kind            `json:"kind" validate:"required,oneof=private group"`
	ParticipantIDs []identifier.ID `json:"participant_ids"`
}
