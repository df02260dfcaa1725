package documents

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
)

func TestContactRoundTrip(t *testing.T) {
	original := contact.New("Jon", "jon@x.com")

	raw, err := bson.Marshal(NewContact(original))
	require.NoError(t, err)
	assert.Equal(t, bson.TypeObjectID, bson.Raw(raw).Lookup("_id").Type)
	assert.Equal(t, bson.TypeDateTime, bson.Raw(raw).Lookup("created_at").Type)

	var doc Contact
	require.NoError(t, bson.Unmarshal(raw, &doc))
	decoded := doc.EtoD()

	assert.Equal(t, original, decoded)
	assert.Equal(t, identifier.KindNative, decoded.ID.Kind())
}

func TestChannelRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		original channel.Channel
	}{
		{
			name:     "private without name",
			original: channel.New(nil, channel.KindPrivate, []identifier.ID{identifier.NewNative(), identifier.NewNative()}),
		},
		{
			name:     "named group",
			original: channel.New(lo.ToPtr("Night's Watch"), channel.KindGroup, []identifier.ID{identifier.NewNative(), identifier.NewNative(), identifier.NewNative()}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(NewChannel(tt.original))
			require.NoError(t, err)

			assert.Equal(t, bson.TypeString, bson.Raw(raw).Lookup("id").Type)
			assert.Equal(t, tt.original.ParticipantKey(), bson.Raw(raw).Lookup("participant_key").StringValue())
			values, err := bson.Raw(raw).Lookup("participant_ids").Array().Values()
			require.NoError(t, err)
			for _, v := range values {
				assert.Equal(t, bson.TypeObjectID, v.Type)
			}
			if tt.original.Name == nil {
				_, err := bson.Raw(raw).LookupErr("name")
				assert.Error(t, err)
			}

			var doc Channel
			require.NoError(t, bson.Unmarshal(raw, &doc))
			decoded := doc.EtoD()

			assert.Equal(t, tt.original, decoded)
			assert.Equal(t, identifier.KindText, decoded.ID.Kind())
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	original := message.New(identifier.NewText(), identifier.NewNative(), identifier.NewNative(), "winter is coming")

	raw, err := bson.Marshal(NewMessage(original))
	require.NoError(t, err)
	assert.Equal(t, bson.TypeString, bson.Raw(raw).Lookup("id").Type)
	assert.Equal(t, bson.TypeString, bson.Raw(raw).Lookup("channel_id").Type)
	assert.Equal(t, bson.TypeObjectID, bson.Raw(raw).Lookup("sender_id").Type)

	var doc Message
	require.NoError(t, bson.Unmarshal(raw, &doc))
	decoded := doc.EtoD()

	assert.Equal(t, original, decoded)
	assert.Equal(t, identifier.KindNative, decoded.SenderID.Kind())
	assert.Equal(t, identifier.KindText, decoded.ChannelID.Kind())
}

func TestDecodeIgnoresStoreAssignedID(t *testing.T) {
	original := message.New(identifier.NewText(), identifier.NewNative(), identifier.NewNative(), "hi")
	raw, err := bson.Marshal(NewMessage(original))
	require.NoError(t, err)

	var fields bson.D
	require.NoError(t, bson.Unmarshal(raw, &fields))
	fields = append(bson.D{{Key: "_id", Value: identifier.NewNative()}}, fields...)
	withStoreID, err := bson.Marshal(fields)
	require.NoError(t, err)

	var doc Message
	require.NoError(t, bson.Unmarshal(withStoreID, &doc))
	assert.Equal(t, original, doc.EtoD())
}
