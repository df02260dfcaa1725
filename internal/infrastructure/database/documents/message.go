package documents

import (
	"time"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
)

const MessagesCollection = "messages"

// Message is the persisted form of a message, keyed by an explicit string field.
type Message struct {
	ID          identifier.ID `bson:"id"`
	ChannelID   identifier.ID `bson:"channel_id"`
	SenderID    identifier.ID `bson:"sender_id"`
	RecipientID identifier.ID `bson:"recipient_id"`
	Content     string        `bson:"content"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}

func NewMessage(m message.Message) Message {
	return Message{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// EtoD converts the document to the domain model.
func (d Message) EtoD() message.Message {
	return message.Message{
		ID:          d.ID,
		ChannelID:   d.ChannelID,
		SenderID:    d.SenderID,
		RecipientID: d.RecipientID,
		Content:     d.Content,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}
