package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/infrastructure/metrics"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/requests"
	"github.com/janhq/chat-server/internal/interfaces/httpserver/responses"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
	"github.com/janhq/chat-server/pkg/observability"
)

// ContactHandler exposes HTTP entrypoints for contacts.
type ContactHandler struct {
	service contact.Service
	log     zerolog.Logger
}

// NewContactHandler constructs the handler.
func NewContactHandler(service contact.Service, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With().Str("handler", "contact").Logger(),
	}
}

// Create handles POST /v1/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req requests.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", err, h.log)
		return
	}

	created, err := h.service.CreateContact(c.Request.Context(), req.ToCommand())
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	metrics.RecordContactCreated()
	observability.AddAttrsToSpan(trace.SpanFromContext(c.Request.Context()),
		observability.WithContactAttrs(created.ID.String(), "", nil)...)
	c.JSON(http.StatusCreated, responses.FromContact(created))
}

// List handles GET /v1/contacts?skip=&limit=
func (h *ContactHandler) List(c *gin.Context) {
	page, err := requests.ParsePageQuery(c, "skip", "limit")
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error(), err, h.log)
		return
	}

	total, items, err := h.service.ListContacts(c.Request.Context(), page.ListOptions())
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.NewCountedList(total, responses.FromContacts(items)))
}

// Get handles GET /v1/contacts/:contact_id
func (h *ContactHandler) Get(c *gin.Context) {
	id := identifier.Parse(c.Param("contact_id"))

	found, ok, err := h.service.GetContact(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, fmt.Sprintf("Contact with id %s not found", id), nil, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.FromContact(found))
}

// Update handles PATCH /v1/contacts/:contact_id
func (h *ContactHandler) Update(c *gin.Context) {
	var req requests.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", err, h.log)
		return
	}

	updated, err := h.service.UpdateContact(c.Request.Context(), req.ToCommand(identifier.Parse(c.Param("contact_id"))))
	if err != nil {
		responses.HandleError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.FromContact(updated))
}

// Delete handles DELETE /v1/contacts/:contact_id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteContact(c.Request.Context(), identifier.Parse(c.Param("contact_id"))); err != nil {
		responses.HandleError(c, err, h.log)
		return
	}
	c.Status(http.StatusNoContent)
}
