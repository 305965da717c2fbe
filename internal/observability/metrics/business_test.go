package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordArticleNameCreated(t *testing.T) {
	before := testutil.ToFloat64(ArticleNamesCreatedTotal)
	RecordArticleNameCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(ArticleNamesCreatedTotal))
}

func TestRecordArticleNameCreateFailure(t *testing.T) {
	c := ArticleNameCreateFailuresTotal.WithLabelValues(FailureReasonValidation)
	before := testutil.ToFloat64(c)
	RecordArticleNameCreateFailure(FailureReasonValidation)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestRecordSeedRun(t *testing.T) {
	success := SeedRunsTotal.WithLabelValues(SeedResultSuccess)
	failure := SeedRunsTotal.WithLabelValues(SeedResultFailure)
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)
	beforeInserted := testutil.ToFloat64(SeedArticlesInsertedTotal)

	RecordSeedRun(SeedResultSuccess, 11)
	RecordSeedRun(SeedResultFailure, 11)

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+1, testutil.ToFloat64(failure))
	assert.Equal(t, beforeInserted+11, testutil.ToFloat64(SeedArticlesInsertedTotal), "failed runs insert nothing")
}

func TestRecordMutation(t *testing.T) {
	c := ReferenceDataMutationsTotal.WithLabelValues("supervisor", "delete")
	before := testutil.ToFloat64(c)
	RecordMutation("supervisor", "delete")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func histogramOf(t *testing.T, o prometheus.Observer) *dto.Histogram {
	t.Helper()
	m, ok := o.(prometheus.Metric)
	require.True(t, ok)
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	return out.GetHistogram()
}

func TestRecordDBQuery(t *testing.T) {
	obs := DBQueryDuration.WithLabelValues("create_article_name")
	before := histogramOf(t, obs)

	RecordDBQuery("create_article_name", 3*time.Millisecond)

	after := histogramOf(t, obs)
	assert.Equal(t, before.GetSampleCount()+1, after.GetSampleCount())
	assert.InDelta(t, before.GetSampleSum()+0.003, after.GetSampleSum(), 1e-9)
}

func TestRecordBreakerState(t *testing.T) {
	RecordBreakerState("database", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))
	RecordBreakerState("database", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))
}
