package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/infrastructure/metrics"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/requests"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/responses"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
	"github.com/janhq/chat-server/pkg/observability"
)

// ChannelHandler exposes HTTP entrypoints for channels.
type ChannelHandler struct {
	service channel.Service
	log     zerolog.Logger
}

// NewChannelHandler constructs the handler.
func NewChannelHandler(service channel.Service, log zerolog.Logger) *ChannelHandler {
	return &ChannelHandler{
		service: service,
		log:     log.With().Str("handler", "channel").Logger(),
	}
}

// Create handles POST /v1/channels
func (h *ChannelHandler) Create(c *gin.Context) {
	var req requests.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", err, h.log)
		return
	}

	created, err := h.service.CreateChannel(c.Request.Context(), req.ToCommand())
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	metrics.RecordChannelCreated(string(created.Kind))
	observability.AddAttrsToSpan(trace.SpanFromContext(c.Request.Context()),
		observability.WithChannelAttrs(created.ID.String(), string(created.Kind), len(created.ParticipantIDs))...)
	c.JSON(http.StatusCreated, responses.FromChannel(created))
}

// List handles GET /v1/channels?skip=&limit=
func (h *ChannelHandler) List(c *gin.Context) {
	page, err := requests.ParsePageQuery(c, "skip", "limit")
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), err, h.log)
		return
	}

	total, items, err := h.service.ListChannels(c.Request.Context(), page.ListOptions())
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.NewCountedList(total, responses.FromChannels(items)))
}

// Get handles GET /v1/channels/:channel_id
func (h *ChannelHandler) Get(c *gin.Context) {
	id := identifier.Parse(c.Param("channel_id"))

	found, ok, err := h.service.GetChannel(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, fmt.Sprintf("Channel with id %s not found", id), nil, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.FromChannel(found))
}

// ListForContact handles GET /v1/contacts/:contact_id/channels
func (h *ChannelHandler) ListForContact(c *gin.Context) {
	items, err := h.service.FindContactChannels(c.Request.Context(), identifier.Parse(c.Param("contact_id")))
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.NewList(responses.FromChannels(items)))
}
