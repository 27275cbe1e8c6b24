package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "kindkart.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "strict", cfg.TransitionMode)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/kindkart")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("TRANSITION_MODE", "Permissive")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/kindkart", cfg.DatabaseURL)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "permissive", cfg.TransitionMode)
}

func TestLoad_RejectsUnknownTransitionMode(t *testing.T) {
	t.Setenv("TRANSITION_MODE", "yolo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "tomorrow")

	_, err := Load()
	assert.Error(t, err)
}
