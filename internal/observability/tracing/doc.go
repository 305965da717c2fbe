// Package tracing wires OpenTelemetry into the service: a tracer provider
// configured from the environment, an HTTP server middleware and a helper
// for use-case spans.
//
//	shutdown := tracing.Init(tracing.ConfigFromEnv())
//	defer shutdown(ctx)
//
//	ctx, span := tracing.StartSpan(ctx, "content.Submit")
//	defer span.End()
package tracing
