// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package app runs the startup and shutdown sequence shared by both services.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis, when REDIS_URL is set.
//  5. Run database migrations (idempotent).
//  6. Wire the service's HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// The service-specific part is limited to step 6, supplied by the caller.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/cinecast/internal/api"
	"github.com/taibuivan/cinecast/internal/platform/config"
	"github.com/taibuivan/cinecast/internal/platform/constants"
	"github.com/taibuivan/cinecast/internal/platform/metrics"
	"github.com/taibuivan/cinecast/internal/platform/migration"
	pgstore "github.com/taibuivan/cinecast/internal/platform/postgres"
	redisstore "github.com/taibuivan/cinecast/internal/platform/redis"
)

// Deps is the infrastructure handed to a service's wiring function.
type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics

	// Redis is nil when REDIS_URL is not configured.
	Redis *goredis.Client
}

// WireFunc builds the domain handlers of a service. ctx is cancelled when
// the process begins shutting down, so background workers may use it.
type WireFunc func(ctx context.Context, deps Deps) (api.Handlers, error)

// Run starts the named service and blocks until it stops.
func Run(service string, wire WireFunc) error {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(service, slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load(service)
	if err != nil {
		return fail(log, err, "load configuration")
	}

	if cfg.Debug {
		log = newLogger(service, slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context lives until a shutdown signal arrives.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Bound startup so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return fail(log, err, "connect to postgres")
	}
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			return fail(log, err, "connect to redis")
		}
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
	} else {
		log.Warn("redis_disabled", slog.String("reason", "REDIS_URL not set"))
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, cfg.MigrationsTable, log); err != nil {
		return fail(log, err, "run migrations")
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	m := metrics.New(service)

	handlers, err := wire(rootCtx, Deps{Config: cfg, Logger: log, Pool: pool, Metrics: m, Redis: rdb})
	if err != nil {
		return fail(log, err, "wire handlers")
	}

	health := api.HealthDependencies{
		CheckDatabase: func() error { return pgstore.Ping(context.Background(), pool) },
	}
	if rdb != nil {
		health.CheckCache = func() error { return redisstore.Ping(context.Background(), rdb) }
	}
	handlers.Liveness, handlers.Readiness = api.NewHealthHandlers(health, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, m, handlers)

	return serve(rootCtx, stop, server, log)
}

// lifecycle is the part of [api.Server] that serve drives.
type lifecycle interface {
	ListenAndServe() error
	Shutdown(timeout time.Duration) error
}

// serve runs server until ctx is done or the listener fails, then shuts it
// down. A listener failure is returned even when shutdown succeeds.
func serve(ctx context.Context, stop context.CancelFunc, server lifecycle, log *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	var listenErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	case listenErr = <-serverErr:
		log.Error("server_startup_error", slog.Any("error", listenErr))
	}
	stop()

	// Give in-flight requests enough time to complete.
	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return fail(log, err, "shutdown")
	}

	if listenErr != nil {
		return fail(log, listenErr, "serve")
	}

	log.Info("server_stopped_cleanly")
	return nil
}

func newLogger(service string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(
		slog.String("app", constants.AppName),
		slog.String("service", service),
	)
}

// fail logs a structured lifecycle error and returns it wrapped.
func fail(log *slog.Logger, err error, step string) error {
	log.Error("service_failure",
		slog.String("context", step),
		slog.Any("error", err),
	)
	return fmt.Errorf("%s: %w", step, err)
}
