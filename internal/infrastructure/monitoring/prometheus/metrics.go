package prometheus

// AppMetrics holds every metric family the service emits.
type AppMetrics struct {
	// Assessment pipeline
	PredictionsTotal    CounterVec   // status, model_used
	InferenceDuration   HistogramVec // model_used
	FallbackActivations CounterVec   // reason
	ValidationFailures  Counter
	ModelLoadsTotal     CounterVec // result

	// Recommendation scorer
	RecommendationsTotal CounterVec // status

	// HTTP layer
	HTTPRequestsTotal   CounterVec   // method, path, status_code
	HTTPRequestDuration HistogramVec // method, path
	HTTPActiveRequests  Gauge
}

// InferenceDurationBuckets covers the expected range: sub-millisecond cached
// forward passes up to the 15 second load deadline.
var InferenceDurationBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 15}

// HTTPDurationBuckets are the standard request latency buckets.
var HTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// NewAppMetrics registers the application metric families on the collector.
func NewAppMetrics(c MetricsCollector) *AppMetrics {
	return &AppMetrics{
		PredictionsTotal: c.Counter("predictions_total",
			"Completed stunting assessments", "status", "model_used"),
		InferenceDuration: c.Histogram("inference_duration_seconds",
			"Wall time of model load plus forward pass", InferenceDurationBuckets, "model_used"),
		FallbackActivations: c.Counter("fallback_activations_total",
			"Assessments answered by the rule-based estimator", "reason"),
		ValidationFailures: c.Counter("validation_failures_total",
			"Assessment requests rejected by input validation").WithLabelValues(),
		ModelLoadsTotal: c.Counter("model_loads_total",
			"Weight artifact load attempts", "result"),

		RecommendationsTotal: c.Counter("recommendations_total",
			"Article recommendation requests", "status"),

		HTTPRequestsTotal: c.Counter("http_requests_total",
			"HTTP requests served", "method", "path", "status_code"),
		HTTPRequestDuration: c.Histogram("http_request_duration_seconds",
			"HTTP request latency", HTTPDurationBuckets, "method", "path"),
		HTTPActiveRequests: c.Gauge("http_active_requests",
			"In-flight HTTP requests").WithLabelValues(),
	}
}
