package observability

import (
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Config holds the telemetry settings of a service.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	TracingEnabled bool
	MetricsEnabled bool
	OTLPEndpoint   string
	OTLPHeaders    map[string]string
	SamplingRate   float64 // 0.0 - 1.0
	PIILevel       string  // none|hashed|full
	PIISalt        string

	TraceBatchTimeout time.Duration
	MetricInterval    time.Duration
	ResourceAttrs     []attribute.KeyValue
}

// DefaultConfig returns sensible defaults
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName:       serviceName,
		ServiceVersion:    "unknown",
		Environment:       "development",
		OTLPEndpoint:      "localhost:4318",
		SamplingRate:      1.0,
		PIILevel:          "hashed",
		TraceBatchTimeout: 5 * time.Second,
		MetricInterval:    15 * time.Second,
	}
}

// exportTarget splits an OTLP endpoint into the host:port the HTTP exporters
// expect and whether plain HTTP should be used. A bare host:port is insecure.
func exportTarget(endpoint string) (hostport string, insecure bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "https://"), "/"), false
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "http://"), "/"), true
	default:
		return strings.TrimSuffix(endpoint, "/"), true
	}
}
