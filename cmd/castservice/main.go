// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command castservice serves the cast catalogue on /api/v1/casts.
//
// Cast deletions are announced on Redis when REDIS_URL is set, so the movie
// service can flag movies that still reference the deleted cast.
package main

import (
	"context"
	"os"

	"github.com/taibuivan/cinecast/internal/api"
	"github.com/taibuivan/cinecast/internal/app"
	"github.com/taibuivan/cinecast/internal/cast"
	"github.com/taibuivan/cinecast/internal/castevent"
	"github.com/taibuivan/cinecast/internal/platform/constants"
)

func main() {
	if err := app.Run(constants.ServiceCast, wire); err != nil {
		os.Exit(1)
	}
}

func wire(_ context.Context, deps app.Deps) (api.Handlers, error) {
	var publisher cast.EventPublisher = castevent.Discard{}
	if deps.Redis != nil {
		publisher = castevent.NewPublisher(deps.Redis, deps.Metrics)
	}

	repository := cast.NewPostgresRepository(deps.Pool)
	service := cast.NewService(repository, publisher, deps.Logger)

	return api.Handlers{Cast: cast.NewHandler(service)}, nil
}
