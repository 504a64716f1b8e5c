package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "ENV", "API_URL", "VITE_API_URL", "REACT_APP_API_URL", "MESSAGE_TIMEOUT", "DEMO_MODE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.UI.MessageTimeout)
	assert.Equal(t, 2*time.Second, cfg.UI.AddedFeedbackTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.False(t, cfg.API.Demo)
}

func TestLoad_APIURLPrecedence(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("VITE_API_URL", "http://vite.local/api/")
	t.Setenv("REACT_APP_API_URL", "http://react.local/api")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://vite.local/api", cfg.API.BaseURL)

	t.Setenv("API_URL", "http://backend:9000/api")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000/api", cfg.API.BaseURL)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9191\nMESSAGE_TIMEOUT=5\n"), 0o600))
	t.Setenv("MESSAGE_TIMEOUT", "")
	os.Unsetenv("MESSAGE_TIMEOUT")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.UI.MessageTimeout)

	os.Unsetenv("PORT")
	os.Unsetenv("MESSAGE_TIMEOUT")
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvAsDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "garbage")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "30")
	assert.Equal(t, 30*time.Second, getEnvAsDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "0")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "-1m")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION", time.Second))
}

func TestLoad_NonPositiveDurationsFallBack(t *testing.T) {
	for _, key := range []string{"SESSION_SWEEP_INTERVAL", "SESSION_IDLE_TTL", "API_TIMEOUT", "MESSAGE_TIMEOUT", "ADDED_FEEDBACK_TIMEOUT"} {
		t.Setenv(key, "0")
	}
	t.Setenv("API_TIMEOUT", "-5s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3*time.Second, cfg.UI.MessageTimeout)
	assert.Equal(t, 2*time.Second, cfg.UI.AddedFeedbackTimeout)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "0")
	assert.False(t, getEnvAsBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL", true))
}
