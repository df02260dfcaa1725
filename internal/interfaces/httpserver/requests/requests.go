package requests

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/janhq/chat-server/internal/domain/channel"
	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/message"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// CreateContactRequest is the body of POST /v1/contacts.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CreateContactRequest) ToCommand() contact.CreateContactCommand {
	return contact.CreateContactCommand{Name: r.Name, Email: r.Email}
}

// UpdateContactRequest is the body of PATCH /v1/contacts/:contact_id. Omitted
// fields are left unchanged.
type UpdateContactRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateContactRequest) ToCommand(id identifier.ID) contact.UpdateContactCommand {
	return contact.UpdateContactCommand{ID: id, Name: r.Name, Email: r.Email}
}

// CreateChannelRequest is the body of POST /v1/channels.
type CreateChannelRequest struct {
	Name           *string  `json:"name,omitempty"`
	Kind           string   `json:"kind"`
	ParticipantIDs []string `json:"participant_ids"`
}

func (r CreateChannelRequest) ToCommand() channel.CreateChannelCommand {
	return channel.CreateChannelCommand{
		Name:           r.Name,
		Kind:           channel.Kind(r.Kind),
		ParticipantIDs: lo.Map(r.ParticipantIDs, func(id string, _ int) identifier.ID { return identifier.Parse(id) }),
	}
}

// SendMessageRequest is the body of POST /v1/messages. Without channel_id the
// message goes to the private channel of the two contacts.
type SendMessageRequest struct {
	ChannelID *string `json:"channel_id,omitempty"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Content   string  `json:"content"`
}

func (r SendMessageRequest) ToCommand() message.SendMessageCommand {
	cmd := message.SendMessageCommand{
		From:    identifier.Parse(r.From),
		To:      identifier.Parse(r.To),
		Content: r.Content,
	}
	if r.ChannelID != nil {
		cmd.ChannelID = lo.ToPtr(identifier.Parse(*r.ChannelID))
	}
	return cmd
}

// PageQuery holds the skip/limit query parameters of list endpoints.
type PageQuery struct {
	Skip  *int64
	Limit *int64
}

// ParsePageQuery reads skip and limit from the query string. Values that are
// absent stay nil so the repository defaults apply.
func ParsePageQuery(c *gin.Context, skipKey, limitKey string) (PageQuery, error) {
	var q PageQuery
	var err error
	if q.Skip, err = optionalInt(c, skipKey); err != nil {
		return q, err
	}
	if q.Limit, err = optionalInt(c, limitKey); err != nil {
		return q, err
	}
	return q, nil
}

func (q PageQuery) ListOptions() repository.ListOptions {
	return repository.ListOptions{Skip: q.Skip, Limit: q.Limit}
}

func optionalInt(c *gin.Context, key string) (*int64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &QueryError{Key: key, Value: raw}
	}
	return &v, nil
}

// QueryError reports a query parameter that is not an integer.
type QueryError struct {
	Key   string
	Value string
}

func (e *QueryError) Error() string {
	return "query parameter " + e.Key + " must be an integer, got " + strconv.Quote(e.Value)
}
