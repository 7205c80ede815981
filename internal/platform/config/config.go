// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles service-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load(constants.ServiceMovie)
	if err != nil {
	    log.Fatal(err)
	}

Both binaries share one [Config] schema. Values that differ per service (port,
migration directory) are pre-filled from [constants] before the environment is
parsed, so an explicit environment variable always wins.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/cinecast/internal/platform/constants"
	"github.com/taibuivan/cinecast/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for a cinecast service.
type Config struct {

	// Service is the logical service name ("cast-service", "movie-service").
	Service string

	// MigrationsTable is the golang-migrate bookkeeping table of this service.
	MigrationsTable string

	// Server settings
	ServerPort  string `env:"SERVER_PORT"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH"`

	// RedisURL enables cast deletion events when set.
	RedisURL string `env:"REDIS_URL"`

	// Per-IP rate limit. RATE_LIMIT_RPS=0 disables it.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// Cast service lookup (movie-service only)
	CastServiceURL         string        `env:"CAST_SERVICE_HOST_URL"    envDefault:"http://localhost:8002/api/v1/casts/"`
	CastCheckTimeout       time.Duration `env:"CAST_CHECK_TIMEOUT"       envDefault:"3s"`
	CastCheckIndeterminate string        `env:"CAST_CHECK_INDETERMINATE" envDefault:"deny"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct for the named service.
func Load(service string) (*Config, error) {
	defaults, ok := constants.ServiceDefaults[service]
	if !ok {
		return nil, fmt.Errorf("config: unknown service %q", service)
	}

	// Pre-fill per-service defaults; env.Parse leaves a field untouched when its variable is unset.
	cfg := &Config{
		Service:         service,
		ServerPort:      defaults.ServerPort,
		MigrationPath:   defaults.MigrationPath,
		MigrationsTable: defaults.MigrationsTable,
		RateLimitRPS:    defaults.RateLimitRPS,
		RateLimitBurst:  defaults.RateLimitBurst,
	}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CastCheckIndeterminate {
	case constants.IndeterminateDeny, constants.IndeterminateUnavailable:
	default:
		return fmt.Errorf("config: CAST_CHECK_INDETERMINATE must be %q or %q, got %q",
			constants.IndeterminateDeny, constants.IndeterminateUnavailable, c.CastCheckIndeterminate)
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("config: RATE_LIMIT_BURST must be at least 1 when the limit is enabled, got %d", c.RateLimitBurst)
	}

	if c.CastCheckTimeout <= 0 {
		return fmt.Errorf("config: CAST_CHECK_TIMEOUT must be positive, got %s", c.CastCheckTimeout)
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// RateLimitEnabled reports whether the per-IP limiter should be installed.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

// AllowedOrigins returns the extra CORS origins as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
