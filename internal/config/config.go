// Package config loads runtime configuration from environment variables.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the client needs to reach the ERP backend.
type Config struct {
	// APIBaseURL is the origin of the REST backend, without a trailing slash.
	APIBaseURL string `env:"PYMERP_API_URL, default=http://localhost:3001/api"`

	// APIToken is the bearer token sent on every request. When it is a JWT
	// the session reads identity claims from it; any other value falls back
	// to the built-in demo identity.
	APIToken string `env:"PYMERP_API_TOKEN, default=demo-token"`

	// RequestTimeout bounds every backend round trip.
	RequestTimeout time.Duration `env:"PYMERP_REQUEST_TIMEOUT, default=5s"`

	// PollInterval is the notification refresh cadence.
	PollInterval time.Duration `env:"PYMERP_POLL_INTERVAL, default=30s"`

	// DownloadDir is where PDF reports are saved.
	DownloadDir string `env:"PYMERP_DOWNLOAD_DIR, default=."`

	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string `env:"PYMERP_METRICS_ADDR"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
