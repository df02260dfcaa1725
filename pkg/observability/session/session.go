package session

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Instrumenter instruments long-lived realtime sessions such as websocket connections.
type Instrumenter struct {
	tracer          trace.Tracer
	sessionsActive  metric.Int64UpDownCounter
	sessionDuration metric.Float64Histogram
	framesTotal     metric.Int64Counter
}

// NewInstrumenter creates a new session instrumenter
func NewInstrumenter(tracer trace.Tracer, meter metric.Meter, serviceName string) (*Instrumenter, error) {
	sessionsActive, err := meter.Int64UpDownCounter(
		fmt.Sprintf("jan_%s_sessions_active", serviceName),
		metric.WithDescription("Number of open realtime sessions"),
	)
	if err != nil {
		return nil, err
	}

	sessionDuration, err := meter.Float64Histogram(
		fmt.Sprintf("jan_%s_session_duration_seconds", serviceName),
		metric.WithDescription("Realtime session lifetime"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	framesTotal, err := meter.Int64Counter(
		fmt.Sprintf("jan_%s_frames_total", serviceName),
		metric.WithDescription("Total frames exchanged over realtime sessions"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrumenter{
		tracer:          tracer,
		sessionsActive:  sessionsActive,
		sessionDuration: sessionDuration,
		framesTotal:     framesTotal,
	}, nil
}

// Track runs fn for the lifetime of one session inside a span and records
// its duration. fn receives a callback to count frames by direction.
func (i *Instrumenter) Track(ctx context.Context, kind string, sessionID string, fn func(ctx context.Context, frame func(direction string)) error) error {
	i.sessionsActive.Add(ctx, 1)
	defer i.sessionsActive.Add(ctx, -1)

	ctx, span := i.tracer.Start(ctx, fmt.Sprintf("session.%s", kind),
		trace.WithAttributes(
			attribute.String("session.kind", kind),
			attribute.String("session.id", sessionID),
		),
	)
	defer span.End()

	var frames int64
	frame := func(direction string) {
		frames++
		i.framesTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("session.kind", kind),
			attribute.String("direction", direction),
		))
	}

	start := time.Now()
	err := fn(ctx, frame)

	status := "closed"
	if err != nil {
		status = "error"
		span.RecordError(err)
	}
	span.SetAttributes(attribute.Int64("session.frames", frames))

	i.sessionDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("session.kind", kind),
		attribute.String("status", status),
	))

	return err
}
