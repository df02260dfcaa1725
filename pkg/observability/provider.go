package observability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-server/pkg/telemetry"
)

// Provider holds initialized OTEL components. Tracer and Meter are always
// usable; when a signal is disabled they come from the global no-op providers.
type Provider struct {
	Tracer         trace.Tracer
	Meter          metric.Meter
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Sanitizer      *telemetry.Sanitizer

	shutdownFuncs []func(context.Context) error
}

// Init initializes OTEL for a service
func Init(ctx context.Context, cfg Config) (*Provider, error) {
	salt := cfg.PIISalt
	if salt == "" {
		salt = cfg.ServiceName
	}
	provider := &Provider{
		Sanitizer: telemetry.NewSanitizer(telemetry.PIILevel(cfg.PIILevel), salt),
	}

	// Propagation is installed even without an exporter so inbound trace ids still reach the logs.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.TracingEnabled && !cfg.MetricsEnabled {
		provider.Tracer = otel.Tracer(cfg.ServiceName)
		provider.Meter = otel.Meter(cfg.ServiceName)
		return provider, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithAttributes(cfg.ResourceAttrs...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if cfg.TracingEnabled {
		tp, err := initTracerProvider(ctx, cfg, res)
		if err != nil {
			return nil, fmt.Errorf("failed to init tracer: %w", err)
		}
		provider.TracerProvider = tp
		provider.shutdownFuncs = append(provider.shutdownFuncs, tp.Shutdown)
		otel.SetTracerProvider(tp)
	}
	provider.Tracer = otel.Tracer(cfg.ServiceName)

	if cfg.MetricsEnabled {
		mp, err := initMeterProvider(ctx, cfg, res)
		if err != nil {
			_ = provider.Shutdown(ctx)
			return nil, fmt.Errorf("failed to init meter: %w", err)
		}
		provider.MeterProvider = mp
		provider.shutdownFuncs = append(provider.shutdownFuncs, mp.Shutdown)
		otel.SetMeterProvider(mp)
	}
	provider.Meter = otel.Meter(cfg.ServiceName)

	return provider, nil
}

// Shutdown flushes and stops every initialized provider, reporting all failures.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for _, shutdown := range p.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdownFuncs = nil
	return errors.Join(errs...)
}

func initTracerProvider(ctx context.Context, cfg Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	endpoint, insecure := exportTarget(cfg.OTLPEndpoint)
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithHeaders(cfg.OTLPHeaders),
	}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	sampler := sdktrace.ParentBased(
		sdktrace.TraceIDRatioBased(cfg.SamplingRate),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(cfg.TraceBatchTimeout),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	), nil
}

func initMeterProvider(ctx context.Context, cfg Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	endpoint, insecure := exportTarget(cfg.OTLPEndpoint)
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(endpoint),
		otlpmetrichttp.WithHeaders(cfg.OTLPHeaders),
	}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter,
				sdkmetric.WithInterval(cfg.MetricInterval),
			),
		),
		sdkmetric.WithResource(res),
	), nil
}
