package handlers

import (
	"github.com/rs/zerolog"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/message"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Contact *ContactHandler
	Channel *ChannelHandler
	Message *MessageHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(contacts contact.Service, channels channel.Service, messages message.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Contact: NewContactHandler(contacts, log),
		Channel: NewChannelHandler(channels, log),
		Message: NewMessageHandler(messages, log),
	}
}
