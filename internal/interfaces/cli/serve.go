package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/byestunting/byestunting/internal/assessment"
	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/content"
	"github.com/byestunting/byestunting/internal/healthdata"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/prometheus"
	"github.com/byestunting/byestunting/internal/infrastructure/storage/weights"
	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
	httpserver "github.com/byestunting/byestunting/internal/interfaces/http"
	"github.com/byestunting/byestunting/internal/interfaces/http/handlers"
	"github.com/byestunting/byestunting/internal/interfaces/http/middleware"
	"github.com/byestunting/byestunting/internal/messages"
)

// NewServeCommand creates the serve subcommand running the API server until
// SIGINT or SIGTERM.
func NewServeCommand(root *RootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Jalankan server API ByeStunting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			return RunServer(cfg, logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "server port (overrides config)")
	return cmd
}

// RunServer wires the full application and blocks until SIGINT, SIGTERM, or
// a listener failure. Shared by the serve subcommand and cmd/apiserver.
func RunServer(cfg *config.Config, logger logging.Logger) error {
	logger.Info("starting byestunting api server",
		logging.String("version", config.Version),
		logging.Int("port", cfg.Server.Port),
		logging.String("model_source", cfg.Model.Source),
	)

	source, err := weights.New(cfg, logger)
	if err != nil {
		return err
	}

	engine, err := stuntnet.NewCachedEngine(source, cfg.Model.Timeout, logger)
	if err != nil {
		return err
	}
	defer engine.Dispose()

	var collector prometheus.MetricsCollector
	if cfg.Metrics.Enabled {
		collector, err = prometheus.NewCollector(cfg.Metrics.Namespace, logger)
		if err != nil {
			return err
		}
	} else {
		collector = prometheus.NewNopCollector()
	}
	appMetrics := prometheus.NewAppMetrics(collector)

	orchestrator := assessment.NewOrchestrator(engine, nil, logger)
	articleStore := content.NewStore()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute)
		defer rateLimiter.Stop()
	}

	corsCfg := middleware.DefaultCORSConfig()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		PredictionHandler:     handlers.NewPredictionHandler(orchestrator, appMetrics, logger),
		RecommendationHandler: handlers.NewRecommendationHandler(content.NewRecommender(articleStore), appMetrics),
		ArticleHandler:        handlers.NewArticleHandler(articleStore),
		HealthDataHandler:     handlers.NewHealthDataHandler(healthdata.NewCatalog()),
		MessageHandler:        handlers.NewMessageHandler(messages.NewStore()),
		HealthHandler: handlers.NewHealthHandler(config.Version, logger, handlers.ReadinessCheck{
			Name:  "model",
			Probe: engine.Load,
		}),

		CORS:        &corsCfg,
		RateLimiter: rateLimiter,

		Logger:           logger,
		MetricsCollector: collector,
		AppMetrics:       appMetrics,
	})

	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Warm the model off the request path so the first prediction does not
	// pay the load cost. Failure is tolerated; the orchestrator degrades to
	// the fallback estimator.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Model.Timeout)
		defer cancel()
		if err := engine.Load(ctx); err != nil {
			appMetrics.ModelLoadsTotal.WithLabelValues("failure").Inc()
			logger.Warn("model warm-up failed", logging.Err(err))
			return
		}
		appMetrics.ModelLoadsTotal.WithLabelValues("success").Inc()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout+5*time.Second)
	defer cancel()
	return server.Stop(ctx)
}
