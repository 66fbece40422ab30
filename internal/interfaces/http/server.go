package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the platform's lifecycle conventions.
type Server struct {
	srv             *http.Server
	router          http.Handler
	logger          logging.Logger
	port            int
	shutdownTimeout time.Duration
}

// NewServer builds a Server around an already-constructed router.
func NewServer(cfg config.ServerConfig, router http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		router:          router,
		logger:          logger,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start blocks serving requests until the listener fails or Stop is called.
// A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.Int("port", s.port))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down, waiting at most
// the configured shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("http server stopped")
	return nil
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
