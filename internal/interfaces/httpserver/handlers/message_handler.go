package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/infrastructure/metrics"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/requests"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/responses"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
	"github.com/janhq/chat-server/pkg/observability"
)

// MessageHandler exposes HTTP entrypoints for messages.
type MessageHandler struct {
	service message.Service
	log     zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service message.Service, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With().Str("handler", "message").Logger(),
	}
}

// Send handles POST /v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req requests.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", err, h.log)
		return
	}

	sent, err := h.service.SendMessage(c.Request.Context(), req.ToCommand())
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	routing := "private"
	if req.ChannelID != nil {
		routing = "explicit"
	}
	metrics.RecordMessageSent(routing)
	observability.AddAttrsToSpan(trace.SpanFromContext(c.Request.Context()),
		observability.WithMessageAttrs(sent.ID.String(), sent.ChannelID.String(), sent.SenderID.String(), sent.RecipientID.String(), routing)...)
	c.JSON(http.StatusCreated, responses.FromMessage(sent))
}

// ListForChannel handles GET /v1/channels/:channel_id/messages?limit=&offset=
// Messages are returned newest first.
func (h *MessageHandler) ListForChannel(c *gin.Context) {
	page, err := requests.ParsePageQuery(c, "offset", "limit")
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), err, h.log)
		return
	}

	var limit, offset int64
	if page.Limit != nil {
		limit = *page.Limit
	}
	if page.Skip != nil {
		offset = *page.Skip
	}

	items, err := h.service.ListChannelMessages(c.Request.Context(), identifier.Parse(c.Param("channel_id")), limit, offset)
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.NewList(responses.FromMessages(items)))
}
