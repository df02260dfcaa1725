package inmemory

import (
	"context"
	"slices"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/identifier"
)

// ChannelRepository implements channel.Repository.
type ChannelRepository struct {
	*Repository[channel.Channel]
}

var _ channel.Repository = (*ChannelRepository)(nil)

func NewChannelRepository() *ChannelRepository {
	return &ChannelRepository{Repository: NewRepository(cloneChannel)}
}

func (r *ChannelRepository) FindByParticipantID(_ context.Context, contactID identifier.ID) ([]channel.Channel, error) {
	return r.Filter(func(c channel.Channel) bool {
		return slices.Contains(c.ParticipantIDs, contactID)
	}), nil
}

func (r *ChannelRepository) FindByParticipantSet(_ context.Context, ids []identifier.ID) (channel.Channel, bool, error) {
	key := channel.ParticipantKey(ids)
	return r.first(func(c channel.Channel) bool { return c.ParticipantKey() == key })
}

func (r *ChannelRepository) FindPrivateChannel(_ context.Context, ids []identifier.ID) (channel.Channel, bool, error) {
	key := channel.ParticipantKey(ids)
	return r.first(func(c channel.Channel) bool {
		return c.Kind == channel.KindPrivate && c.ParticipantKey() == key
	})
}

func (r *ChannelRepository) first(match func(channel.Channel) bool) (channel.Channel, bool, error) {
	matches := r.Filter(match)
	if len(matches) == 0 {
		return channel.Channel{}, false, nil
	}
	return matches[0], true, nil
}

func cloneChannel(c channel.Channel) channel.Channel {
	c.ParticipantIDs = slices.Clone(c.ParticipantIDs)
	if c.Name != nil {
		name := *c.Name
		c.Name = &name
	}
	return c
}
