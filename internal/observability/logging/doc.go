// Package logging provides structured logging utilities with context propagation.
//
//	logger := logging.NewLogger(logging.ConfigFromEnv())
//	logging.WithRequestID(ctx, logger).Info("article created")
package logging
