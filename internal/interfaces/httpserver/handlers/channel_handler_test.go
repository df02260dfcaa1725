package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/handlers"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

const aryaID = "65a1f0c2e4b0a1b2c3d4e5f7"

func setupChannelTestRouter(handler *handlers.ChannelHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/channels", handler.Create)
	r.GET("/v1/channels", handler.List)
	r.GET("/v1/channels/:channel_id", handler.Get)
	r.GET("/v1/contacts/:contact_id/channels", handler.ListForContact)
	return r
}

func TestChannelHandler_Create(t *testing.T) {
	var got channel.CreateChannelCommand
	mockService := &MockChannelService{
		CreateChannelFunc: func(ctx context.Context, cmd channel.CreateChannelCommand) (channel.Channel, error) {
			got = cmd
			return channel.Channel{ID: identifier.Text("starks"), Kind: cmd.Kind, ParticipantIDs: cmd.ParticipantIDs}, nil
		},
	}
	router := setupChannelTestRouter(handlers.NewChannelHandler(mockService, zerolog.Nop()))

	w := doJSON(t, router, http.MethodPost, "/v1/channels", map[string]any{
		"kind":            "private",
		"participant_ids": []string{jonID, aryaID},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, channel.KindPrivate, got.Kind)
	assert.Equal(t, []identifier.ID{identifier.Parse(jonID), identifier.Parse(aryaID)}, got.ParticipantIDs)

	body := decode(t, w)
	assert.Equal(t, "starks", body["id"])
	assert.Nil(t, body["name"])
	assert.Equal(t, []any{jonID, aryaID}, body["participant_ids"])
}

func TestChannelHandler_CreateInvalid(t *testing.T) {
	mockService := &MockChannelService{
		CreateChannelFunc: func(ctx context.Context, cmd channel.CreateChannelCommand) (channel.Channel, error) {
			return channel.Channel{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				channel.PrivateParticipantsMessage, nil, "")
		},
	}
	router := setupChannelTestRouter(handlers.NewChannelHandler(mockService, zerolog.Nop()))

	w := doJSON(t, router, http.MethodPost, "/v1/channels", map[string]any{"kind": "private", "participant_ids": []string{jonID}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	detail := decode(t, w)["error"].(map[string]any)
	assert.Equal(t, channel.PrivateParticipantsMessage, detail["message"])
}

func TestChannelHandler_GetNotFound(t *testing.T) {
	router := setupChannelTestRouter(handlers.NewChannelHandler(&MockChannelService{}, zerolog.Nop()))

	w := doJSON(t, router, http.MethodGet, "/v1/channels/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	detail := decode(t, w)["error"].(map[string]any)
	assert.Equal(t, "Channel with id nowhere not found", detail["message"])
}

func TestChannelHandler_ListForContact(t *testing.T) {
	var asked identifier.ID
	mockService := &MockChannelService{
		FindContactChannelsFunc: func(ctx context.Context, contactID identifier.ID) ([]channel.Channel, error) {
			asked = contactID
			return []channel.Channel{
				{ID: identifier.Text("a"), Kind: channel.KindPrivate},
				{ID: identifier.Text("b"), Kind: channel.KindGroup},
			}, nil
		},
	}
	router := setupChannelTestRouter(handlers.NewChannelHandler(mockService, zerolog.Nop()))

	w := doJSON(t, router, http.MethodGet, "/v1/contacts/"+jonID+"/channels", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, identifier.Parse(jonID), asked)
	body := decode(t, w)
	assert.Equal(t, "list", body["object"])
	assert.Len(t, body["data"], 2)
	assert.NotContains(t, body, "total")
}
