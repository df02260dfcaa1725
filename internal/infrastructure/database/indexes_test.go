package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/janhq/chat-server/internal/infrastructure/database/documents"
)

func TestIndexes(t *testing.T) {
	indexes := Indexes()
	require.Len(t, indexes, 3)

	contacts := indexes[documents.ContactsCollection]
	require.Len(t, contacts, 1)
	assert.True(t, *contacts[0].Options.Unique)

	var pair bool
	for _, model := range indexes[documents.ChannelsCollection] {
		if model.Options.Name != nil && *model.Options.Name == "uniq_private_channel_pair" {
			pair = true
			assert.True(t, *model.Options.Unique)
			assert.Equal(t, bson.D{{Key: "kind", Value: "private"}}, model.Options.PartialFilterExpression)
		}
	}
	assert.True(t, pair, "private pair index missing")
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates every collection's indexes", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB, zerolog.Nop()))

		started := mt.GetAllStartedEvents()
		require.Len(mt, started, 3)
		for _, evt := range started {
			assert.Equal(mt, "createIndexes", evt.CommandName)
		}
	})

	mt.Run("surfaces server errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index already exists with different options",
		}))

		err := EnsureIndexes(context.Background(), mt.DB, zerolog.Nop())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "index already exists with different options")
	})
}
