// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command movieservice serves the movie catalogue on /api/v1/movies.
//
// Every cast id written to a movie is verified against the cast service at
// CAST_SERVICE_HOST_URL. With REDIS_URL set, the service also listens for
// cast deletions and logs the movies left referencing them.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/taibuivan/cinecast/internal/api"
	"github.com/taibuivan/cinecast/internal/app"
	"github.com/taibuivan/cinecast/internal/castclient"
	"github.com/taibuivan/cinecast/internal/castevent"
	"github.com/taibuivan/cinecast/internal/movie"
	"github.com/taibuivan/cinecast/internal/platform/constants"
)

func main() {
	if err := app.Run(constants.ServiceMovie, wire); err != nil {
		os.Exit(1)
	}
}

func wire(ctx context.Context, deps app.Deps) (api.Handlers, error) {
	cfg := deps.Config

	checker := castclient.New(cfg.CastServiceURL, cfg.CastCheckTimeout, deps.Metrics)
	repository := movie.NewPostgresRepository(deps.Pool)
	service := movie.NewService(repository, checker, movie.IndeterminatePolicy(cfg.CastCheckIndeterminate), deps.Logger)

	if deps.Redis != nil {
		listener := castevent.NewListener(func(ctx context.Context, castID int64) error {
			_, err := service.ReportDanglingCast(ctx, castID)
			return err
		}, deps.Metrics, deps.Logger)

		go func() {
			if err := listener.Listen(ctx, deps.Redis); err != nil {
				deps.Logger.Error("cast_event_listener_failed", slog.Any("error", err))
			}
		}()
	}

	deps.Logger.Info("cast_service_configured",
		slog.String("url", checker.BaseURL()),
		slog.Duration("timeout", cfg.CastCheckTimeout),
		slog.String("indeterminate_policy", cfg.CastCheckIndeterminate),
	)

	return api.Handlers{Movie: movie.NewHandler(service, checker.BaseURL())}, nil
}
