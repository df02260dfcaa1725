package message

import (
	"time"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// Message is a piece of content sent from one contact to another inside a channel.
type Message struct {
	ID          identifier.ID `json:"id"`
	ChannelID   identifier.ID `json:"channel_id"`
	SenderID    identifier.ID `json:"sender_id"`
	RecipientID identifier.ID `json:"recipient_id"`
	Content     string        `json:"content"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// EntityID implements repository.Entity.
func (m Message) EntityID() identifier.ID {
	return m.ID
}

func New(channelID, senderID, recipientID identifier.ID, content string) Message {
	now := repository.Now()
	return Message{
		ID:          identifier.NewText(),
		ChannelID:   channelID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SendMessageCommand carries the input of Service.SendMessage. Without a
// ChannelID the message goes to the private channel of From and To.
type SendMessageCommand struct {
	ChannelID *identifier.ID `json:"channel_id,omitempty"`
	From      identifier.ID  `json:"from"`
	To        identifier.ID  `json:"to"`
	Content   string         `json:"content" validate:"required"`
}
