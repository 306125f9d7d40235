package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "acconsole")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, cfg.BaseURL)
	require.Equal(t, filepath.Join(dir, defaultDatabaseFile), cfg.DatabasePath)
	require.Equal(t, filepath.Join(dir, defaultLogFile), cfg.LogPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Zero(t, cfg.Timeout())

	_, err = os.Stat(filepath.Join(dir, defaultConfigName))
	require.NoError(t, err)
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	data, err := json.Marshal(Config{BaseURL: "http://mc.example:9000", HTTPTimeout: 5})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigName), data, 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "http://mc.example:9000", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout())
	require.Equal(t, filepath.Join(dir, defaultDatabaseFile), cfg.DatabasePath)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ACCONSOLE_URL", "http://override:8080")
	t.Setenv("ACCONSOLE_LOG_LEVEL", "debug")
	t.Setenv("ACCONSOLE_HTTP_TIMEOUT", "10")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "http://override:8080", cfg.BaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestLoadConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("ACCONSOLE_HTTP_TIMEOUT", "soon")
	_, err := LoadConfig(t.TempDir())
	require.ErrorContains(t, err, "parse env")
}

func TestLoadConfigRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigName), []byte("{"), 0644))
	_, err := LoadConfig(dir)
	require.Error(t, err)
}
