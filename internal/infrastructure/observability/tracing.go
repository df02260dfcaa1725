package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "chat-server"
)

// GetTracer returns the tracer for the chat server.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// DBAttributes returns common attributes for document store spans.
func DBAttributes(collection, operation string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("db.system", "mongodb"),
		attribute.String("db.mongodb.collection", collection),
		attribute.String("db.operation", operation),
	}
}

// StartDBSpan starts a client span around a document store call.
func StartDBSpan(ctx context.Context, collection, operation string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "mongodb."+collection+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(DBAttributes(collection, operation)...),
	)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
