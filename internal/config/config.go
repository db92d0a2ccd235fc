// Package config reads runtime configuration from flags and environment.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client runtime settings. DatabaseURI is optional; without
// it state persists only in memory for the lifetime of the process.
type Config struct {
	APIBaseURL     string `env:"API_BASE_URL"`
	DatabaseURI    string `env:"DATABASE_URI"`
	ClientScope    string `env:"CLIENT_SCOPE"`
	TimeoutSeconds int    `env:"REQUEST_TIMEOUT_SECONDS"`
}

// Parse reads flags first, then lets environment variables override them.
func Parse() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.APIBaseURL, "a", "http://localhost:8080", "storefront API base URL")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI for persisted state")
	flag.StringVar(&cfg.ClientScope, "s", "", "client scope for persisted state")
	flag.IntVar(&cfg.TimeoutSeconds, "t", 10, "request timeout in seconds")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return cfg, nil
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
