package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"rosternorm/internal/config"
	apierrors "rosternorm/internal/errors"
	"rosternorm/internal/middleware"
	"rosternorm/internal/services"
	transporthttp "rosternorm/internal/transport/http"
)

// Application wires configuration, services, middleware and transport into
// one HTTP server.
type Application struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// New assembles the application.
func New(cfg *config.Config, logger *slog.Logger) *Application {
	errorHandler := apierrors.NewErrorHandler(logger)
	normalizeService := services.NewNormalizeService(cfg.Normalizer, logger)

	rosterHandler := transporthttp.NewRosterHandler(
		normalizeService, cfg.Normalizer.MaxUploadBytes, logger, errorHandler)
	healthHandler := transporthttp.NewHealthHandler(logger)
	metrics := middleware.NewMetrics()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(metrics.Handler)
	if cfg.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.Security.RateLimit.RPS, cfg.Security.RateLimit.Burst, logger)
		r.Use(limiter.Handler)
	}
	if cfg.Security.EnableCORS {
		r.Use(middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.Security.AllowedOrigins,
		}))
	}
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/health", healthHandler.HealthCheck)
		r.Mount("/", rosterHandler.Routes())
	})
	r.Handle("/metrics", metrics.Endpoint())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{cfg: cfg, logger: logger, server: server}
}

// Run starts the server and blocks until the context is cancelled, then
// shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down server",
		slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Handler exposes the root router for tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

// ShutdownTimeout reports the configured graceful shutdown window.
func (a *Application) ShutdownTimeout() time.Duration {
	return a.cfg.Server.ShutdownTimeout
}
