package handlers

import (
	"net/http"
	"time"

	"github.com/byestunting/byestunting/internal/assessment"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/prometheus"
	"github.com/byestunting/byestunting/pkg/errors"
)

// PredictionResponse is the assessment result on the wire: the interpreted
// result plus which model produced it and when.
type PredictionResponse struct {
	assessment.Result
	ModelUsed string    `json:"modelUsed"`
	Timestamp time.Time `json:"timestamp"`
}

// PredictionHandler serves POST /api/v1/predictions.
type PredictionHandler struct {
	orchestrator *assessment.Orchestrator
	metrics      *prometheus.AppMetrics
	logger       logging.Logger
	now          func() time.Time
}

// NewPredictionHandler wires the handler. metrics may be nil.
func NewPredictionHandler(orch *assessment.Orchestrator, metrics *prometheus.AppMetrics, logger logging.Logger) *PredictionHandler {
	if metrics == nil {
		metrics = prometheus.NewAppMetrics(prometheus.NewNopCollector())
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &PredictionHandler{orchestrator: orch, metrics: metrics, logger: logger, now: time.Now}
}

// Create runs an assessment for the submitted measurements.
func (h *PredictionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input assessment.AnthropometricInput
	if err := decodeJSON(r, &input); err != nil {
		writeAppError(w, err)
		return
	}

	start := time.Now()
	outcome, err := h.orchestrator.Assess(r.Context(), input)
	if err != nil {
		h.metrics.ValidationFailures.Inc()
		writeAppError(w, err)
		return
	}
	h.metrics.InferenceDuration.WithLabelValues(outcome.ModelUsed).Observe(time.Since(start).Seconds())

	h.metrics.PredictionsTotal.WithLabelValues(string(outcome.Result.Status), outcome.ModelUsed).Inc()
	if outcome.ModelUsed == assessment.ModelFallback {
		h.metrics.FallbackActivations.WithLabelValues(fallbackReason(outcome.Cause)).Inc()
	}

	writeJSON(w, http.StatusOK, PredictionResponse{
		Result:    *outcome.Result,
		ModelUsed: outcome.ModelUsed,
		Timestamp: h.now().UTC(),
	})
}

func fallbackReason(cause error) string {
	switch {
	case errors.IsTimeout(cause):
		return "timeout"
	case errors.IsCode(cause, errors.CodeModelLoad), errors.IsCode(cause, errors.CodeWeightArtifact):
		return "load"
	default:
		return "inference"
	}
}
