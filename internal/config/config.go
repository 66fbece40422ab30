// Package config defines all configuration structures for the ByeStunting
// platform. No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// Version is the platform version, overridable at build time via ldflags.
var Version = "dev"

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ModelConfig holds inference-model parameters: where the weight artifacts
// live and how long a combined load+predict attempt may take before the
// orchestrator degrades to the heuristic fallback.
type ModelConfig struct {
	// Source selects the weight artifact backend: "fs" | "minio".
	Source string `mapstructure:"source"`

	// ManifestPath and WeightsPath locate the artifacts for the "fs" source.
	ManifestPath string `mapstructure:"manifest_path"`
	WeightsPath  string `mapstructure:"weights_path"`

	// Timeout bounds network loading plus the forward pass.
	Timeout time.Duration `mapstructure:"timeout"`
}

// MinIOConfig holds MinIO / S3-compatible object-storage parameters for the
// "minio" weight source.
type MinIOConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	Bucket         string `mapstructure:"bucket"`
	UseSSL         bool   `mapstructure:"use_ssl"`
	ManifestObject string `mapstructure:"manifest_object"`
	WeightsObject  string `mapstructure:"weights_object"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// RateLimitConfig holds per-client request throttling parameters.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

// Config is the root configuration structure for the entire platform.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Model     ModelConfig     `mapstructure:"model"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	switch c.Model.Source {
	case "fs":
		if c.Model.ManifestPath == "" {
			return fmt.Errorf("config: model.manifest_path is required for the fs source")
		}
		if c.Model.WeightsPath == "" {
			return fmt.Errorf("config: model.weights_path is required for the fs source")
		}
	case "minio":
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("config: minio.endpoint is required for the minio source")
		}
		if c.MinIO.Bucket == "" {
			return fmt.Errorf("config: minio.bucket is required for the minio source")
		}
	default:
		return fmt.Errorf("config: model.source %q is invalid; expected fs|minio", c.Model.Source)
	}

	if c.Model.Timeout <= 0 {
		return fmt.Errorf("config: model.timeout must be positive, got %s", c.Model.Timeout)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("config: rate_limit.requests_per_minute must be ≥ 1, got %d", c.RateLimit.RequestsPerMinute)
	}

	return nil
}
