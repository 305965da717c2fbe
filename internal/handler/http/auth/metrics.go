package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Token request results.
const (
	resultIssued   = "issued"
	resultRejected = "rejected"
	resultError    = "error"
)

var (
	tokenRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_requests_total",
			Help: "Token requests by account role and result",
		},
		[]string{"role", "result"},
	)

	tokenIssueDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_token_duration_seconds",
			Help:    "Time spent checking credentials and signing a token",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"result"},
	)

	authzCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "Bearer token verification and role lookup duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// ロール別の拒否数。super_admin 以外の書き込み試行の監視用
	forbiddenRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_forbidden_requests_total",
			Help: "Requests refused by the role permission table",
		},
		[]string{"role", "method"},
	)
)

func recordTokenRequest(role, result string, elapsed time.Duration) {
	if role == "" {
		role = "unknown"
	}
	tokenRequestsTotal.WithLabelValues(role, result).Inc()
	tokenIssueDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

func recordAuthzCheck(role, method string, elapsed time.Duration, allowed bool) {
	authzCheckDuration.Observe(elapsed.Seconds())
	if !allowed {
		forbiddenRequestsTotal.WithLabelValues(role, method).Inc()
	}
}
