package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/infrastructure/database/documents"
)

// MessageRepository persists messages in the messages collection, keyed by the "id" field.
type MessageRepository struct {
	*Repository[message.Message, documents.Message]
}

var _ message.Repository = (*MessageRepository)(nil)

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{
		Repository: NewRepository(db.Collection(documents.MessagesCollection), TextKeys, documents.NewMessage),
	}
}

// FindByChannel returns newest messages first; _id breaks ties in insertion order.
func (r *MessageRepository) FindByChannel(ctx context.Context, channelID identifier.ID, limit, offset int64) ([]message.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	return r.Find(ctx, bson.D{{Key: "channel_id", Value: channelID.String()}}, opts)
}
