package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
api:
  base_url: http://localhost:9090/api/v1
server:
  port: 9090
  metrics_enabled: true
storage:
  database_path: test.db
observability:
  logging:
    level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.MetricsEnabled)
	assert.Equal(t, "test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("PODESK_TEST_URL", "http://orders.internal/api/v1")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: ${PODESK_TEST_URL}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://orders.internal/api/v1", cfg.API.BaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PODESK_API_BASE_URL", "http://example.com/api/v1")
	t.Setenv("PODESK_DB_PATH", "env.db")
	t.Setenv("PODESK_PORT", "8099")

	cfg := LoadFromEnv()
	assert.Equal(t, "http://example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 8099, cfg.Server.Port)
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 8083, cfg.Server.Port)
	assert.Equal(t, "podesk.db", cfg.Storage.DatabasePath)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoadOrEnvFallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}
