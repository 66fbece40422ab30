package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return NewDefaultConfig()
}

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "fs", cfg.Model.Source)
	assert.Equal(t, 15*time.Second, cfg.Model.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidate_ServerPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidate_ServerMode(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())
}

func TestValidate_ModelSource(t *testing.T) {
	cfg := validConfig()
	cfg.Model.Source = "ftp"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Model.Source = "fs"
	cfg.Model.ManifestPath = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Model.Source = "minio"
	cfg.MinIO.Endpoint = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Model.Source = "minio"
	require.NoError(t, cfg.Validate())
}

func TestValidate_ModelTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Model.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_Log(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Log.Format = "text"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerMinute = 0
	cfg.RateLimit.RequestsPerMinute = -1
	assert.Error(t, cfg.Validate())

	cfg.RateLimit.RequestsPerMinute = 60
	assert.NoError(t, cfg.Validate())
}

func TestApplyDefaults_DoesNotOverrideExplicit(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9000
	cfg.Model.Timeout = 5 * time.Second
	ApplyDefaults(cfg)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Model.Timeout)
	assert.Equal(t, DefaultModelManifestPath, cfg.Model.ManifestPath)
}

func TestApplyDefaults_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}
