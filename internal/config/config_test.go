package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 20*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, filepath.Join(homeDir, ".coursecupid", "state"), cfg.StateDir)
	assert.Equal(t, filepath.Join(homeDir, ".coursecupid", "profiles.toml"), cfg.DraftsPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadReadsConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	dir := filepath.Join(homeDir, ".coursecupid")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[api]
base_url = "https://cupid.example.edu"

[poll]
interval = "2s"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "https://cupid.example.edu", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("CUPID_API_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("CUPID_HEARTBEAT_INTERVAL", "1m")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURL)
	assert.Equal(t, time.Minute, cfg.HeartbeatInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "base url scheme", key: "CUPID_API_BASE_URL", value: "localhost:8000", wantErr: "api.base_url"},
		{name: "zero timeout", key: "CUPID_API_TIMEOUT", value: "0s", wantErr: "api.timeout"},
		{name: "negative poll", key: "CUPID_POLL_INTERVAL", value: "-1s", wantErr: "poll.interval"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadMalformedConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	dir := filepath.Join(homeDir, ".coursecupid")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}
