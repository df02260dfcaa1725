package message

import (
	"context"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// Repository persists messages.
type Repository interface {
	repository.Repository[Message]

	// FindByChannel pages through a channel's messages, newest first.
	FindByChannel(ctx context.Context, channelID identifier.ID, limit, offset int64) ([]Message, error)
}
