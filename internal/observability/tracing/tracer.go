package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"stock-admin/pkg/config"
)

const instrumentationName = "stock-admin"

// Config controls span sampling.
type Config struct {
	Enabled     bool
	SampleRatio float64
}

// ConfigFromEnv reads TRACING_ENABLED and TRACING_SAMPLE_RATIO (percent, 0-100).
func ConfigFromEnv() Config {
	ratio := float64(config.GetEnvInt("TRACING_SAMPLE_RATIO", 100)) / 100
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Config{
		Enabled:     config.GetEnvBool("TRACING_ENABLED", true),
		SampleRatio: ratio,
	}
}

// Init installs a tracer provider and the W3C propagator globally and returns
// its shutdown function. Spans carry IDs for log correlation and
// X-Trace-Id; no exporter is attached.
func Init(cfg Config) func(context.Context) error {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// GetTracer returns the application tracer from the current global provider.
func GetTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartSpan starts an internal span named name.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError marks span as failed with err. A nil err is a no-op.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
