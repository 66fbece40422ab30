package handlers

import (
	"net/http"

	"github.com/byestunting/byestunting/internal/content"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/prometheus"
)

// RecommendationHandler serves POST /api/v1/recommendations.
type RecommendationHandler struct {
	recommender *content.Recommender
	metrics     *prometheus.AppMetrics
}

// NewRecommendationHandler wires the handler. metrics may be nil.
func NewRecommendationHandler(rec *content.Recommender, metrics *prometheus.AppMetrics) *RecommendationHandler {
	if metrics == nil {
		metrics = prometheus.NewAppMetrics(prometheus.NewNopCollector())
	}
	return &RecommendationHandler{recommender: rec, metrics: metrics}
}

// Create returns the top articles for an assessment outcome.
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input content.RecommendationInput
	if err := decodeJSON(r, &input); err != nil {
		writeAppError(w, err)
		return
	}

	articles, err := h.recommender.Recommend(input)
	if err != nil {
		writeAppError(w, err)
		return
	}

	h.metrics.RecommendationsTotal.WithLabelValues(string(input.Status)).Inc()
	writeJSON(w, http.StatusOK, articles)
}
