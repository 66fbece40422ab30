package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/prometheus"
	"github.com/byestunting/byestunting/internal/interfaces/http/handlers"
	"github.com/byestunting/byestunting/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the complete HTTP route tree.
type RouterConfig struct {
	// Handlers
	PredictionHandler     *handlers.PredictionHandler
	RecommendationHandler *handlers.RecommendationHandler
	ArticleHandler        *handlers.ArticleHandler
	HealthDataHandler     *handlers.HealthDataHandler
	MessageHandler        *handlers.MessageHandler
	HealthHandler         *handlers.HealthHandler

	// Middleware
	CORS        *middleware.CORSConfig
	RateLimiter *middleware.RateLimiter

	// Infrastructure
	Logger           logging.Logger
	MetricsCollector prometheus.MetricsCollector
	AppMetrics       *prometheus.AppMetrics
}

// NewRouter constructs the complete HTTP route tree from the given
// configuration. It wires global middleware, public probe endpoints, and the
// API v1 resource groups into a single http.Handler suitable for use with
// http.Server.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Global middleware (applied to every request) ---
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger))
	}
	if cfg.AppMetrics != nil {
		r.Use(middleware.Metrics(cfg.AppMetrics))
	}
	if cfg.RateLimiter != nil {
		r.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	// --- Public probe endpoints ---
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}

	// Exposed publicly; restrict at the ingress when needed.
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	// --- API v1 ---
	r.Route("/api/v1", func(api chi.Router) {
		registerPredictionRoutes(api, cfg.PredictionHandler)
		registerRecommendationRoutes(api, cfg.RecommendationHandler)
		registerArticleRoutes(api, cfg.ArticleHandler)
		registerHealthDataRoutes(api, cfg.HealthDataHandler)
		registerMessageRoutes(api, cfg.MessageHandler)
	})

	return r
}

// registerPredictionRoutes mounts the inference endpoint under /predictions.
func registerPredictionRoutes(r chi.Router, h *handlers.PredictionHandler) {
	if h == nil {
		return
	}
	r.Post("/predictions", h.Create)
}

// registerRecommendationRoutes mounts the article recommendation endpoint
// under /recommendations.
func registerRecommendationRoutes(r chi.Router, h *handlers.RecommendationHandler) {
	if h == nil {
		return
	}
	r.Post("/recommendations", h.Create)
}

// registerArticleRoutes mounts article resource endpoints under /articles.
func registerArticleRoutes(r chi.Router, h *handlers.ArticleHandler) {
	if h == nil {
		return
	}
	r.Route("/articles", func(ar chi.Router) {
		ar.Get("/", h.List)
		ar.Get("/popular", h.Popular)
		ar.Get("/slug/{slug}", h.GetBySlug)

		ar.Route("/{articleID}", func(item chi.Router) {
			item.Get("/", h.Get)
			item.Post("/view", h.AddView)
			item.Post("/like", h.AddLike)
		})
	})
}

// registerHealthDataRoutes mounts the public health dataset catalog under
// /health-data.
func registerHealthDataRoutes(r chi.Router, h *handlers.HealthDataHandler) {
	if h == nil {
		return
	}
	r.Route("/health-data", func(hr chi.Router) {
		hr.Get("/", h.List)
		hr.Post("/", h.Create)
		hr.Get("/province-stats", h.ProvinceStats)
		hr.Get("/age-stats", h.AgeStats)
		hr.Get("/{recordID}", h.Get)
	})
}

// registerMessageRoutes mounts contact message endpoints under /messages.
func registerMessageRoutes(r chi.Router, h *handlers.MessageHandler) {
	if h == nil {
		return
	}
	r.Route("/messages", func(mr chi.Router) {
		mr.Get("/", h.List)
		mr.Post("/", h.Create)
		mr.Get("/{messageID}", h.Get)
		mr.Patch("/{messageID}", h.SetStatus)
	})
}
