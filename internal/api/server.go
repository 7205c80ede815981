// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and the domain
handlers of one service into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the chi router of both services.
  - A service mounts only the handlers it owns; the other field stays nil.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/cinecast/internal/cast"
	"github.com/taibuivan/cinecast/internal/movie"
	"github.com/taibuivan/cinecast/internal/platform/config"
	"github.com/taibuivan/cinecast/internal/platform/constants"
	"github.com/taibuivan/cinecast/internal/platform/metrics"
	"github.com/taibuivan/cinecast/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups the HTTP handler sets a service can expose.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Cast serves /api/v1/casts on the cast service.
	Cast *cast.Handler

	// Movie serves /api/v1/movies on the movie service.
	Movie *movie.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers the route groups present in h. The rate limiter, when enabled in
// cfg, stops its cleanup loop once ctx is cancelled.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.Metrics, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Instrument(m))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	if cfg.RateLimitEnabled() {
		r.Use(middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware)
	}
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)
	r.Use(chimw.StripSlashes)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// # Application API
	if h.Cast != nil {
		r.Mount(constants.PrefixCasts, h.Cast.Routes())
	}
	if h.Movie != nil {
		r.Mount(constants.PrefixMovies, h.Movie.Routes())
	}

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
