package inmemory

import (
	"context"
	"slices"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// MessageRepository implements message.Repository.
type MessageRepository struct {
	*Repository[message.Message]
}

var _ message.Repository = (*MessageRepository)(nil)

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{Repository: NewRepository[message.Message](nil)}
}

// FindByChannel orders by creation time descending; ties keep the most recently inserted first.
func (r *MessageRepository) FindByChannel(_ context.Context, channelID identifier.ID, limit, offset int64) ([]message.Message, error) {
	matches := r.Filter(func(m message.Message) bool { return m.ChannelID == channelID })
	slices.Reverse(matches)
	slices.SortStableFunc(matches, func(a, b message.Message) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	skip, window := repository.Page(offset, limit).Window()
	return repository.Slice(matches, skip, window), nil
}
