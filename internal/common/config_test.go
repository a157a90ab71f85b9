package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, 10, cfg.Server.MaxUploadMB)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, "gpt-4o-mini", cfg.Vision.Model)
	assert.Equal(t, 3, cfg.Vision.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Vision.Timeout)
	assert.Equal(t, "invoices", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("OPENAI_TIMEOUT", "90s")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("VISION_MAX_ATTEMPTS", "5")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
	assert.Equal(t, 25, cfg.Server.MaxUploadMB)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
	assert.Equal(t, 90*time.Second, cfg.Vision.Timeout)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 5, cfg.Vision.MaxAttempts)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("OPENAI_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.Server.MaxUploadMB)
	assert.Equal(t, 45*time.Second, cfg.Vision.Timeout)
}

func TestValidateRequiresCoreSettings(t *testing.T) {
	cfg := &Config{}
	cfg.Server.HTTPAddr = ":8080"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	cfg.Database.DSN = "postgres://localhost/tally"
	cfg.Vision.APIKey = "sk-test"
	cfg.Auth.BaseURL = "https://auth.example.com"
	assert.NoError(t, cfg.Validate())
}
