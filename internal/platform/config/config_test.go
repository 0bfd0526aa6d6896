package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, time.Hour, cfg.AccessTokenExpiryDuration)
	assert.Equal(t, 240*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, "clipstream-backend", cfg.JWTIssuer)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.Equal(t, "clipstream-media", cfg.S3Bucket)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ACCESS_TOKEN_EXPIRY_DURATION", "30m")
	t.Setenv("REFRESH_TOKEN_EXPIRY_DURATION", "72h")
	t.Setenv("JWT_ISSUER", "clipstream-staging")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenExpiryDuration)
	assert.Equal(t, 72*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, "clipstream-staging", cfg.JWTIssuer)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY_DURATION", "soon")
	t.Setenv("REFRESH_TOKEN_EXPIRY_DURATION", "eventually")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.AccessTokenExpiryDuration)
	assert.Equal(t, 240*time.Hour, cfg.RefreshTokenExpiryDuration)
}
