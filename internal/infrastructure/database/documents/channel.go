package documents

import (
	"slices"
	"time"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/identifier"
)

const ChannelsCollection = "channels"

// Channel is the persisted form of a channel. The identity is an explicit
// string field; _id is left to the store. ParticipantKey is derived on write
// so the private pair can be indexed.
type Channel struct {
	ID             identifier.ID   `bson:"id"`
	Name           *string         `bson:"name,omitempty"`
	Kind           string          `bson:"kind"`
	ParticipantIDs []identifier.ID `bson:"participant_ids"`
	ParticipantKey string          `bson:"participant_key"`
	CreatedAt      time.Time       `bson:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at"`
}

func NewChannel(c channel.Channel) Channel {
	return Channel{
		ID:             c.ID,
		Name:           c.Name,
		Kind:           string(c.Kind),
		ParticipantIDs: slices.Clone(c.ParticipantIDs),
		ParticipantKey: c.ParticipantKey(),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// EtoD converts the document to the domain model.
func (d Channel) EtoD() channel.Channel {
	participants := d.ParticipantIDs
	if participants == nil {
		participants = []identifier.ID{}
	}
	return channel.Channel{
		ID:             d.ID,
		Name:           d.Name,
		Kind:           channel.Kind(d.Kind),
		ParticipantIDs: participants,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}
