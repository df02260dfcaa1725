package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/infrastructure/database/documents"
)

// ChannelRepository persists channels in the channels collection, keyed by the "id" field.
type ChannelRepository struct {
	*Repository[channel.Channel, documents.Channel]
}

var _ channel.Repository = (*ChannelRepository)(nil)

func NewChannelRepository(db *mongo.Database) *ChannelRepository {
	return &ChannelRepository{
		Repository: NewRepository(db.Collection(documents.ChannelsCollection), TextKeys, documents.NewChannel),
	}
}

func (r *ChannelRepository) FindByParticipantID(ctx context.Context, contactID identifier.ID) ([]channel.Channel, error) {
	return r.Find(ctx,
		bson.D{{Key: "participant_ids", Value: contactID}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
}

// FindByParticipantSet matches on the stored participant key, so order and
// duplicates in ids do not matter.
func (r *ChannelRepository) FindByParticipantSet(ctx context.Context, ids []identifier.ID) (channel.Channel, bool, error) {
	return r.FindOne(ctx, bson.D{{Key: "participant_key", Value: channel.ParticipantKey(ids)}})
}

// FindPrivateChannel matches on kind and the stored participant key, the
// same pair the partial unique index covers.
func (r *ChannelRepository) FindPrivateChannel(ctx context.Context, ids []identifier.ID) (channel.Channel, bool, error) {
	return r.FindOne(ctx, bson.D{
		{Key: "kind", Value: string(channel.KindPrivate)},
		{Key: "participant_key", Value: channel.ParticipantKey(ids)},
	})
}
