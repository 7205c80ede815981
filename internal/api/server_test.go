// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinecast/internal/api"
	"github.com/taibuivan/cinecast/internal/platform/config"
	"github.com/taibuivan/cinecast/internal/platform/constants"
	"github.com/taibuivan/cinecast/internal/platform/metrics"
)

func newServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Service: constants.ServiceCast, ServerPort: "0", Environment: "development"}

	handlers := api.Handlers{}
	handlers.Liveness, handlers.Readiness = api.NewHealthHandlers(deps, logger)

	return api.NewServer(ctx, cfg, logger, metrics.New(constants.ServiceCast), handlers).Handler()
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestServer_Health(t *testing.T) {
	server := newServer(t, api.HealthDependencies{})

	recorder := get(server, "/health")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data": {"status": "ok"}}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestServer_Ready reports every configured dependency and degrades on failure.
*/
func TestServer_Ready(t *testing.T) {
	tests := []struct {
		name       string
		deps       api.HealthDependencies
		wantStatus int
		wantBody   string
	}{
		{
			name:       "database_only",
			deps:       api.HealthDependencies{CheckDatabase: func() error { return nil }},
			wantStatus: http.StatusOK,
			wantBody:   `{"data": {"status": "ready", "checks": [{"name": "postgres", "ok": true}]}}`,
		},
		{
			name: "redis_down",
			deps: api.HealthDependencies{
				CheckDatabase: func() error { return nil },
				CheckCache:    func() error { return errors.New("dial tcp: connection refused") },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: `{"data": {"status": "degraded", "checks": [
				{"name": "postgres", "ok": true},
				{"name": "redis", "ok": false, "error": "dial tcp: connection refused"}
			]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(newServer(t, tt.deps), "/ready")

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	server := newServer(t, api.HealthDependencies{})

	get(server, "/health")
	recorder := get(server, "/metrics")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `http_requests_total{method="GET",route="/health",service="cast-service",status="200"} 1`)
}

func TestServer_UnmountedDomain(t *testing.T) {
	server := newServer(t, api.HealthDependencies{})

	assert.Equal(t, http.StatusNotFound, get(server, constants.PrefixMovies+"/").Code)
}
