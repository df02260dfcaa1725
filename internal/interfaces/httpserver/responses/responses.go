package responses

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

// HandleError writes err as the standard error body and aborts the chain.
func HandleError(c *gin.Context, err error, log zerolog.Logger) {
	platformerrors.WriteError(c, err, log)
	c.Abort()
}

// HandleNewError creates a typed error at the handler layer and writes it.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string, cause error, log zerolog.Logger) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, errorType, message, cause, "")
	platformerrors.WriteHTTPError(c, err, log)
	c.Abort()
}

// ListResponse wraps a page of items.
type ListResponse[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
	Total  *int64 `json:"total,omitempty"`
}

func NewList[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Object: "list", Data: data}
}

func NewCountedList[T any](total int64, data []T) ListResponse[T] {
	list := NewList(data)
	list.Total = &total
	return list
}

type ContactResponse struct {
	ID        identifier.ID `json:"id"`
	Object    string        `json:"object"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func FromContact(c contact.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Object:    "contact",
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromContacts(items []contact.Contact) []ContactResponse {
	return lo.Map(items, func(c contact.Contact, _ int) ContactResponse { return FromContact(c) })
}

type ChannelResponse struct {
	ID             identifier.ID   `json:"id"`
	Object         string          `json:"object"`
	Name           *string         `json:"name"`
	Kind           channel.Kind    `json:"kind"`
	ParticipantIDs []identifier.ID `json:"participant_ids"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromChannel(ch channel.Channel) ChannelResponse {
	return ChannelResponse{
		ID:             ch.ID,
		Object:         "channel",
		Name:           ch.Name,
		Kind:           ch.Kind,
		ParticipantIDs: ch.ParticipantIDs,
		CreatedAt:      ch.CreatedAt,
		UpdatedAt:      ch.UpdatedAt,
	}
}

func FromChannels(items []channel.Channel) []ChannelResponse {
	return lo.Map(items, func(ch channel.Channel, _ int) ChannelResponse { return FromChannel(ch) })
}

type MessageResponse struct {
	ID          identifier.ID `json:"id"`
	Object      string        `json:"object"`
	ChannelID   identifier.ID `json:"channel_id"`
	SenderID    identifier.ID `json:"sender_id"`
	RecipientID identifier.ID `json:"recipient_id"`
	Content     string        `json:"content"`
	CreatedAt   time.Time     `json:"created_at"`
}

func FromMessage(m message.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		Object:      "message",
		ChannelID:   m.ChannelID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMessages(items []message.Message) []MessageResponse {
	return lo.Map(items, func(m message.Message, _ int) MessageResponse { return FromMessage(m) })
}
