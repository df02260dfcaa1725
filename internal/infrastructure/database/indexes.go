package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/infrastructure/database/documents"
)

// Indexes lists the indexes each collection needs. The unique ones turn the
// services' check-then-act sequences into storage-enforced invariants.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		documents.ContactsCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_contact_email").SetUnique(true),
			},
		},
		documents.ChannelsCollection: {
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetName("uniq_channel_id").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "participant_ids", Value: 1}},
				Options: options.Index().SetName("idx_channel_participants"),
			},
			{
				Keys: bson.D{{Key: "participant_key", Value: 1}},
				Options: options.Index().
					SetName("uniq_private_channel_pair").
					SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "kind", Value: string(channel.KindPrivate)}}),
			},
		},
		documents.MessagesCollection: {
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetName("uniq_message_id").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "channel_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_message_channel_created"),
			},
		},
	}
}

// EnsureIndexes creates any missing index. Existing indexes with the same
// definition are left alone by the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	for collection, models := range Indexes() {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
		log.Debug().Str("collection", collection).Strs("indexes", names).Msg("indexes ensured")
	}
	return nil
}
