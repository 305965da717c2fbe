// Package metrics defines the Prometheus metrics of the admin service and
// small recording helpers. All collectors register with the default
// registry and are exposed on /metrics.
//
//	metrics.RecordArticleNameCreated()
//	metrics.RecordSeedRun(metrics.SeedResultSuccess, 11)
package metrics
