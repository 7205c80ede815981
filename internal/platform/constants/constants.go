// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for both services.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Services: Names and per-service defaults.
  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Events: Redis channels shared by producer and consumer.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "cinecast"
	AppVersion = "0.1.0-dev"
)

// # Services

const (
	ServiceCast  = "cast-service"
	ServiceMovie = "movie-service"
)

// Defaults holds the values that differ between the two binaries.
type Defaults struct {
	ServerPort    string
	MigrationPath string
	// MigrationsTable keeps each service's golang-migrate bookkeeping apart
	// when both point at the same database.
	MigrationsTable string
	// RateLimitRPS of 0 disables the per-IP limiter.
	RateLimitRPS   float64
	RateLimitBurst int
}

// ServiceDefaults maps a service name to its defaults.
var ServiceDefaults = map[string]Defaults{
	ServiceCast: {
		ServerPort:      "8002",
		MigrationPath:   "./data/migrations/casts",
		MigrationsTable: "casts_schema_migrations",
		// Existence checks all arrive from the movie service's address; no per-IP limit.
		RateLimitRPS: 0,
	},
	ServiceMovie: {
		ServerPort:      "8001",
		MigrationPath:   "./data/migrations/movies",
		MigrationsTable: "movies_schema_migrations",
		RateLimitRPS:    DefaultRateLimitRPS,
		RateLimitBurst:  DefaultRateLimitBurst,
	},
}

// # Route Prefixes

const (
	PrefixCasts  = "/api/v1/casts"
	PrefixMovies = "/api/v1/movies"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds connecting to external dependencies at boot.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Cast Existence Check

const (
	// IndeterminateDeny treats an unreachable cast service as "cast not found".
	IndeterminateDeny = "deny"

	// IndeterminateUnavailable fails the write with 503 when the cast service cannot answer.
	IndeterminateUnavailable = "unavailable"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Channels (Event Taxonomy)

const (
	// ChannelCastDeleted carries the decimal id of every deleted cast.
	ChannelCastDeleted = "casts:deleted"
)
