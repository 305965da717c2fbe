package metrics

import "time"

// Seed run results.
const (
	SeedResultSuccess    = "success"
	SeedResultFailure    = "failure"
	SeedResultInProgress = "in_progress"
)

// Article name creation failure reasons.
const (
	FailureReasonValidation = "validation"
	FailureReasonStore      = "store"
)

// RecordArticleNameCreated records a successful create from the admin form.
func RecordArticleNameCreated() {
	ArticleNamesCreatedTotal.Inc()
}

// RecordArticleNameCreateFailure records a rejected or failed create.
func RecordArticleNameCreateFailure(reason string) {
	ArticleNameCreateFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordSeedRun records one seed invocation. inserted is ignored unless the
// run succeeded.
func RecordSeedRun(result string, inserted int) {
	SeedRunsTotal.WithLabelValues(result).Inc()
	if result == SeedResultSuccess && inserted > 0 {
		SeedArticlesInsertedTotal.Add(float64(inserted))
	}
}

// RecordMutation records an update or delete from a management section.
// resource is "article_name" or "supervisor".
func RecordMutation(resource, operation string) {
	ReferenceDataMutationsTotal.WithLabelValues(resource, operation).Inc()
}

// RecordDBQuery records the duration of a database operation such as
// "create_article_name".
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordBreakerState publishes the state of the named circuit breaker.
func RecordBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
