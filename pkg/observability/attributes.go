package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-server/pkg/telemetry"
)

// Standard attribute keys
const (
	AttrRequestID    = "request_id"
	AttrContactID    = "chat.contact.id"
	AttrContactEmail = "chat.contact.email"
	AttrChannelID    = "chat.channel.id"
	AttrChannelKind  = "chat.channel.kind"
	AttrParticipants = "chat.channel.participants"
	AttrMessageID    = "chat.message.id"
	AttrSenderID     = "chat.message.sender_id"
	AttrRecipientID  = "chat.message.recipient_id"
	AttrRouting      = "chat.message.routing"
)

// WithContactAttrs returns contact attributes. The email is only attached when
// a sanitizer is given.
func WithContactAttrs(contactID, email string, sanitizer *telemetry.Sanitizer) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrContactID, contactID),
	}

	if email != "" && sanitizer != nil {
		attrs = append(attrs, attribute.String(AttrContactEmail, sanitizer.SanitizeEmail(email)))
	}

	return attrs
}

// WithChannelAttrs returns channel attributes
func WithChannelAttrs(channelID, kind string, participants int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrChannelID, channelID),
	}

	if kind != "" {
		attrs = append(attrs, attribute.String(AttrChannelKind, kind))
	}

	if participants > 0 {
		attrs = append(attrs, attribute.Int(AttrParticipants, participants))
	}

	return attrs
}

// WithMessageAttrs returns message attributes
func WithMessageAttrs(messageID, channelID, senderID, recipientID, routing string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrMessageID, messageID),
		attribute.String(AttrChannelID, channelID),
		attribute.String(AttrSenderID, senderID),
		attribute.String(AttrRecipientID, recipientID),
	}

	if routing != "" {
		attrs = append(attrs, attribute.String(AttrRouting, routing))
	}

	return attrs
}

// AddAttrsToSpan adds attributes to the span, ignoring a nil span
func AddAttrsToSpan(span trace.Span, attrs ...attribute.KeyValue) {
	if span == nil || len(attrs) == 0 {
		return
	}
	span.SetAttributes(attrs...)
}

// WithRequestID returns a request ID attribute
func WithRequestID(requestID string) attribute.KeyValue {
	return attribute.String(AttrRequestID, requestID)
}
