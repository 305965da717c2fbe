// Package observability groups the logging, metrics and tracing
// infrastructure of the admin service.
//
// Subpackages:
//   - logging: slog JSON logger with request and trace correlation
//   - metrics: Prometheus HTTP and business metrics
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
