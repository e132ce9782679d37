// Package config loads the service configuration: HTTP server settings from
// the environment and the mention catalog from an optional YAML file.
package config

import (
	"fmt"
	"time"

	pkgconfig "negative-mentions/pkg/config"
)

// ServerConfig holds the HTTP server and runtime settings.
type ServerConfig struct {
	// Addr is the API listen address.
	Addr string
	// MetricsAddr is the listen address for the metrics endpoint.
	// Metrics get their own listener so they are never exposed on the
	// public port.
	MetricsAddr string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// MaxUploadBytes caps the size of dataset upload request bodies.
	MaxUploadBytes int64

	// RateLimitEnabled toggles the per-IP request limiter; RateLimitRPS and
	// RateLimitBurst configure it.
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	// SessionTTL is how long an idle session survives; CleanupInterval is
	// how often expired sessions are purged.
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration

	// CatalogPath points to an optional YAML catalog file. Empty means the
	// built-in catalog.
	CatalogPath string
}

// LoadServerConfig reads the server configuration from environment variables,
// applying defaults for anything unset.
//
// Environment variables:
//   - API_ADDR: API listen address (default ":8080")
//   - METRICS_ADDR: metrics listen address (default ":9090")
//   - READ_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT, SHUTDOWN_TIMEOUT
//   - MAX_UPLOAD_BYTES: upload body cap (default 10 MiB)
//   - RATELIMIT_ENABLED, RATELIMIT_RPS, RATELIMIT_BURST: per-IP limiter settings
//   - SESSION_TTL, SESSION_CLEANUP_INTERVAL
//   - CATALOG_PATH: YAML catalog file path
func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		Addr:            pkgconfig.GetEnvString("API_ADDR", ":8080"),
		MetricsAddr:     pkgconfig.GetEnvString("METRICS_ADDR", ":9090"),
		ReadTimeout:     pkgconfig.GetEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    pkgconfig.GetEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     pkgconfig.GetEnvDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		MaxUploadBytes: pkgconfig.GetEnvInt64("MAX_UPLOAD_BYTES", 10<<20),

		RateLimitEnabled: pkgconfig.GetEnvBool("RATELIMIT_ENABLED", true),
		RateLimitRPS:     pkgconfig.GetEnvFloat("RATELIMIT_RPS", 20),
		RateLimitBurst:   pkgconfig.GetEnvInt("RATELIMIT_BURST", 40),

		SessionTTL:             pkgconfig.GetEnvDuration("SESSION_TTL", time.Hour),
		SessionCleanupInterval: pkgconfig.GetEnvDuration("SESSION_CLEANUP_INTERVAL", 5*time.Minute),

		CatalogPath: pkgconfig.GetEnvString("CATALOG_PATH", ""),
	}

	if err := cfg.validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func (c ServerConfig) validate() error {
	for name, d := range map[string]time.Duration{
		"READ_TIMEOUT":             c.ReadTimeout,
		"WRITE_TIMEOUT":            c.WriteTimeout,
		"IDLE_TIMEOUT":             c.IdleTimeout,
		"SHUTDOWN_TIMEOUT":         c.ShutdownTimeout,
		"SESSION_TTL":              c.SessionTTL,
		"SESSION_CLEANUP_INTERVAL": c.SessionCleanupInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATELIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATELIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	return nil
}
