// Package resilience provides fault tolerance patterns for the application.
//
// The circuitbreaker subpackage guards the PostgreSQL handle so that a failing
// database makes writes fail fast instead of piling up on the connection pool.
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDBCircuitBreaker(database)
//	repo := postgres.NewArticleNameRepo(guarded)
//
// Operations are never retried: a failed write is reported to the caller,
// who may simply try again.
package resilience
