package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat server metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Domain events
	ContactsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "contacts_created_total",
			Help:      "Total contacts created",
		},
	)

	ChannelsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "channels_created_total",
			Help:      "Total channels created through the channel API",
		},
		[]string{"kind"},
	)

	MessagesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "messages_sent_total",
			Help:      "Total messages sent",
		},
		[]string{"routing"},
	)

	// Open websocket sessions
	WebsocketSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "websocket_sessions",
			Help:      "Currently open echo websocket sessions",
		},
	)

	// DB query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "chat_server",
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"collection", "operation", "status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordDBQuery records a database round trip. status is "ok" or "error".
func RecordDBQuery(collection, operation, status string, durationSec float64) {
	DBQueryDuration.WithLabelValues(collection, operation, status).Observe(durationSec)
}

func RecordContactCreated() {
	ContactsCreatedTotal.Inc()
}

func RecordChannelCreated(kind string) {
	ChannelsCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordMessageSent records a sent message. routing is "explicit" when the
// caller named the channel, "private" otherwise.
func RecordMessageSent(routing string) {
	MessagesSentTotal.WithLabelValues(routing).Inc()
}
