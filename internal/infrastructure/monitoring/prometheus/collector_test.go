package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	c, err := NewCollector("byestunting", logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func scrape(t *testing.T, c MetricsCollector) string {
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollector_RequiresNamespace(t *testing.T) {
	_, err := NewCollector("", logging.NewNopLogger())
	assert.Error(t, err)
}

func TestCollector_CounterAppearsInScrape(t *testing.T) {
	c := newTestCollector(t)

	counter := c.Counter("widgets_total", "Widgets produced", "kind")
	counter.WithLabelValues("round").Inc()
	counter.WithLabelValues("round").Add(2)

	output := scrape(t, c)
	assert.Contains(t, output, `byestunting_widgets_total{kind="round"} 3`)
}

func TestCollector_GaugeAndHistogram(t *testing.T) {
	c := newTestCollector(t)

	gauge := c.Gauge("depth", "Queue depth")
	gauge.WithLabelValues().Set(7)

	hist := c.Histogram("latency_seconds", "Latency", []float64{0.1, 1}, "op")
	hist.WithLabelValues("load").Observe(0.05)

	output := scrape(t, c)
	assert.Contains(t, output, "byestunting_depth 7")
	assert.Contains(t, output, `byestunting_latency_seconds_bucket{op="load",le="0.1"} 1`)
}

func TestCollector_DuplicateRegistrationReturnsSame(t *testing.T) {
	c := newTestCollector(t)

	first := c.Counter("dup_total", "Duplicate", "kind")
	second := c.Counter("dup_total", "Duplicate", "kind")

	first.WithLabelValues("a").Inc()
	second.WithLabelValues("a").Inc()

	output := scrape(t, c)
	assert.Contains(t, output, `byestunting_dup_total{kind="a"} 2`)
	assert.Equal(t, 1, strings.Count(output, "# HELP byestunting_dup_total"))
}

func TestTimer_Observes(t *testing.T) {
	c := newTestCollector(t)
	hist := c.Histogram("timed_seconds", "Timed", []float64{10}, "op")

	timer := NewTimer(hist.WithLabelValues("x"))
	time.Sleep(time.Millisecond)
	timer.ObserveDuration()

	output := scrape(t, c)
	assert.Contains(t, output, `byestunting_timed_seconds_count{op="x"} 1`)
}

func TestNopCollector(t *testing.T) {
	c := NewNopCollector()

	// must be safe to use everywhere the real collector is
	c.Counter("a", "a", "l").WithLabelValues("v").Inc()
	c.Gauge("b", "b").WithLabelValues().Set(1)
	c.Histogram("c", "c", nil, "l").WithLabelValues("v").Observe(1)

	metrics := NewAppMetrics(c)
	metrics.PredictionsTotal.WithLabelValues("normal", "network").Inc()
	metrics.HTTPActiveRequests.Inc()
	metrics.HTTPActiveRequests.Dec()
}

func TestAppMetrics_RegistersOnRealCollector(t *testing.T) {
	c := newTestCollector(t)
	metrics := NewAppMetrics(c)

	metrics.PredictionsTotal.WithLabelValues("stunting", "fallback").Inc()
	metrics.InferenceDuration.WithLabelValues("network").Observe(0.02)
	metrics.FallbackActivations.WithLabelValues("timeout").Inc()
	metrics.ValidationFailures.Inc()

	output := scrape(t, c)
	assert.Contains(t, output, `byestunting_predictions_total{model_used="fallback",status="stunting"} 1`)
	assert.Contains(t, output, "byestunting_validation_failures_total 1")
	assert.Contains(t, output, `byestunting_fallback_activations_total{reason="timeout"} 1`)
}
