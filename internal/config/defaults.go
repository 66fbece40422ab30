// Package config provides configuration loading, defaults, and validation
// for the ByeStunting platform.
package config

import "time"

const (
	DefaultServerPort = 8080
	DefaultServerMode = "release"

	DefaultModelSource       = "fs"
	DefaultModelManifestPath = "model-machine-learning/model.json"
	DefaultModelWeightsPath  = "model-machine-learning/group1-shard1of1.bin"

	// DefaultModelTimeout bounds the combined load+predict attempt before
	// the orchestrator degrades to the heuristic fallback.
	DefaultModelTimeout = 15 * time.Second

	DefaultMinIOEndpoint = "localhost:9000"
	DefaultMinIOBucket   = "byestunting-models"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "byestunting"

	DefaultRateLimitPerMinute = 120
)

// ApplyDefaults fills every zero-value field in cfg with the platform
// default. Fields already set by the caller are left unchanged so explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	if cfg.Model.Source == "" {
		cfg.Model.Source = DefaultModelSource
	}
	if cfg.Model.ManifestPath == "" {
		cfg.Model.ManifestPath = DefaultModelManifestPath
	}
	if cfg.Model.WeightsPath == "" {
		cfg.Model.WeightsPath = DefaultModelWeightsPath
	}
	if cfg.Model.Timeout == 0 {
		cfg.Model.Timeout = DefaultModelTimeout
	}

	if cfg.MinIO.Endpoint == "" {
		cfg.MinIO.Endpoint = DefaultMinIOEndpoint
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = DefaultMinIOBucket
	}
	if cfg.MinIO.ManifestObject == "" {
		cfg.MinIO.ManifestObject = "model.json"
	}
	if cfg.MinIO.WeightsObject == "" {
		cfg.MinIO.WeightsObject = "group1-shard1of1.bin"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = DefaultRateLimitPerMinute
	}
}

// NewDefaultConfig returns a Config populated entirely with platform
// defaults, suitable for local development without a config file.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
