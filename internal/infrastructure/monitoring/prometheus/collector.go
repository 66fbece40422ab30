// Package prometheus wraps prometheus/client_golang behind a small collector
// interface so application code never touches the registry directly and tests
// can swap in a no-op.
package prometheus

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/pkg/errors"
)

// MetricsCollector registers metrics under a common namespace and serves
// them. Registration is idempotent per metric name.
type MetricsCollector interface {
	Counter(name, help string, labels ...string) CounterVec
	Gauge(name, help string, labels ...string) GaugeVec
	Histogram(name, help string, buckets []float64, labels ...string) HistogramVec
	Handler() http.Handler
}

// CounterVec is a labeled counter family.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Counter is a single monotonically increasing series.
type Counter interface {
	Inc()
	Add(delta float64)
}

// GaugeVec is a labeled gauge family.
type GaugeVec interface {
	WithLabelValues(lvs ...string) Gauge
}

// Gauge is a single settable series.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// HistogramVec is a labeled histogram family.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// Histogram records observations into buckets.
type Histogram interface {
	Observe(value float64)
}

type collector struct {
	registry   *prometheus.Registry
	namespace  string
	logger     logging.Logger
	mu         sync.Mutex
	registered map[string]prometheus.Collector
}

// NewCollector creates a collector with its own registry, including process
// and Go runtime collectors.
func NewCollector(namespace string, logger logging.Logger) (MetricsCollector, error) {
	if namespace == "" {
		return nil, errors.InvalidParam("metrics namespace is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	registry.MustRegister(prometheus.NewGoCollector())

	return &collector{
		registry:   registry,
		namespace:  namespace,
		logger:     logger,
		registered: make(map[string]prometheus.Collector),
	}, nil
}

func (c *collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// register stores the first collector seen under each name and returns it on
// every subsequent call, so repeated wiring of the same metric is harmless.
func (c *collector) register(name string, fresh prometheus.Collector) prometheus.Collector {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.registered[name]; ok {
		return existing
	}
	if err := c.registry.Register(fresh); err != nil {
		c.logger.Error("metric registration failed", logging.String("name", name), logging.Err(err))
		return nil
	}
	c.registered[name] = fresh
	return fresh
}

func (c *collector) Counter(name, help string, labels ...string) CounterVec {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
	}, labels)

	if registered, ok := c.register(name, vec).(*prometheus.CounterVec); ok {
		return &promCounterVec{vec: registered}
	}
	return nopCounterVec{}
}

func (c *collector) Gauge(name, help string, labels ...string) GaugeVec {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
	}, labels)

	if registered, ok := c.register(name, vec).(*prometheus.GaugeVec); ok {
		return &promGaugeVec{vec: registered}
	}
	return nopGaugeVec{}
}

func (c *collector) Histogram(name, help string, buckets []float64, labels ...string) HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)

	if registered, ok := c.register(name, vec).(*prometheus.HistogramVec); ok {
		return &promHistogramVec{vec: registered}
	}
	return nopHistogramVec{}
}

type promCounterVec struct{ vec *prometheus.CounterVec }

func (v *promCounterVec) WithLabelValues(lvs ...string) Counter {
	return v.vec.WithLabelValues(lvs...)
}

type promGaugeVec struct{ vec *prometheus.GaugeVec }

func (v *promGaugeVec) WithLabelValues(lvs ...string) Gauge {
	return v.vec.WithLabelValues(lvs...)
}

type promHistogramVec struct{ vec *prometheus.HistogramVec }

func (v *promHistogramVec) WithLabelValues(lvs ...string) Histogram {
	return v.vec.WithLabelValues(lvs...)
}

// No-op implementations returned when registration fails and used by
// NewNopCollector.

type nopCounterVec struct{}

func (nopCounterVec) WithLabelValues(...string) Counter { return nopCounter{} }

type nopCounter struct{}

func (nopCounter) Inc()        {}
func (nopCounter) Add(float64) {}

type nopGaugeVec struct{}

func (nopGaugeVec) WithLabelValues(...string) Gauge { return nopGauge{} }

type nopGauge struct{}

func (nopGauge) Set(float64) {}
func (nopGauge) Inc()        {}
func (nopGauge) Dec()        {}

type nopHistogramVec struct{}

func (nopHistogramVec) WithLabelValues(...string) Histogram { return nopHistogram{} }

type nopHistogram struct{}

func (nopHistogram) Observe(float64) {}

type nopCollector struct{}

func (nopCollector) Counter(string, string, ...string) CounterVec { return nopCounterVec{} }
func (nopCollector) Gauge(string, string, ...string) GaugeVec     { return nopGaugeVec{} }
func (nopCollector) Histogram(string, string, []float64, ...string) HistogramVec {
	return nopHistogramVec{}
}
func (nopCollector) Handler() http.Handler { return http.NotFoundHandler() }

// NewNopCollector returns a collector that records nothing, for tests and
// deployments with metrics disabled.
func NewNopCollector() MetricsCollector { return nopCollector{} }

// Timer observes elapsed time into a histogram.
type Timer struct {
	histogram Histogram
	start     time.Time
}

// NewTimer starts a timer against the given histogram.
func NewTimer(histogram Histogram) *Timer {
	return &Timer{histogram: histogram, start: time.Now()}
}

// ObserveDuration records the seconds elapsed since the timer started.
func (t *Timer) ObserveDuration() {
	if t.histogram == nil {
		return
	}
	t.histogram.Observe(time.Since(t.start).Seconds())
}
