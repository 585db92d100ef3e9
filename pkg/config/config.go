package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application.
// Configuration only affects the outer collaborators (server, logging,
// telemetry) — it never changes handler contracts or payload shapes.
type Config struct {
	// Application
	ServiceName    string `conf:"default:items-api,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:1.0.0,env:SERVICE_VERSION"`
	Environment    string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`
	LogLevel       string `conf:"default:info,env:LOG_LEVEL"`
	Debug          bool   `conf:"default:false,env:DEBUG"`

	// HTTP server
	Port int `conf:"default:8080,env:PORT"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability — both optional; empty disables the integration
	OtelEndpoint string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN    string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address derived from the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.Debug {
		errs = append(errs, "DEBUG must not be enabled in production")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
