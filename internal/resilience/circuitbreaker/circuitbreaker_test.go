package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-admin/internal/observability/metrics"
)

var errBoom = errors.New("boom")

func TestCircuitBreaker_TripsOnConsecutiveFailures(t *testing.T) {
	cb := New(Config{Name: "consecutive", Timeout: time.Minute, ConsecutiveFailures: 3})

	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errBoom })
	}
	assert.False(t, cb.IsOpen())

	_, _ = cb.Execute(func() (interface{}, error) { return nil, errBoom })
	assert.True(t, cb.IsOpen())
	assert.Equal(t, "consecutive", cb.Name())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("consecutive")))
}

func TestCircuitBreaker_TripsOnFailureRatio(t *testing.T) {
	cb := New(Config{Name: "ratio", Timeout: time.Minute, MinRequests: 4, FailureRatio: 0.5})

	_, _ = Run(cb, func() (int, error) { return 1, nil })
	_, _ = Run(cb, func() (int, error) { return 0, errBoom })
	_, _ = Run(cb, func() (int, error) { return 1, nil })
	assert.False(t, cb.IsOpen(), "below MinRequests")

	_, _ = Run(cb, func() (int, error) { return 0, errBoom })
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_BenignErrorsDoNotTrip(t *testing.T) {
	cb := New(Config{Name: "benign", Timeout: time.Minute, ConsecutiveFailures: 1, Benign: []error{context.Canceled}})

	_, err := Run(cb, func() (int, error) { return 0, context.Canceled })
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestRun_ReturnsTypedResult(t *testing.T) {
	cb := New(WebhookConfig())

	got, err := Run(cb, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}
