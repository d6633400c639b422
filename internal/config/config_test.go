package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte(`
world:
  seed: 9000
  retention_radius: 12
  raycast_distance: 24.5
render:
  wireframe: true
metrics:
  port: 9100
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, int64(9000), cfg.World.GetSeed())
	assert.Equal(t, 12, cfg.World.GetRetentionRadius())
	assert.Equal(t, 24.5, cfg.World.GetRaycastDistance())
	assert.True(t, cfg.Render.Wireframe)
	assert.Equal(t, 9100, cfg.Metrics.GetMetricsPort())
}

func TestLoadMissingPath(t *testing.T) {
	// Конфиг не задан и ENV пуст — это не ошибка, используются дефолты
	t.Setenv("ENGINE_CONFIG", "")
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("ENGINE_SEED", "777")
	t.Setenv("ENGINE_RETENTION_RADIUS", "6")
	t.Setenv("ENGINE_METRICS_PORT", "9200")

	var cfg Config
	assert.Equal(t, int64(777), cfg.World.GetSeed())
	assert.Equal(t, 6, cfg.World.GetRetentionRadius())
	assert.Equal(t, 9200, cfg.Metrics.GetMetricsPort())
}

func TestDefaults(t *testing.T) {
	t.Setenv("ENGINE_SEED", "")
	t.Setenv("ENGINE_RETENTION_RADIUS", "")
	t.Setenv("ENGINE_METRICS_PORT", "")

	var cfg Config
	assert.Equal(t, int64(1337), cfg.World.GetSeed())
	assert.Equal(t, 8, cfg.World.GetRetentionRadius())
	assert.Equal(t, 16.0, cfg.World.GetRaycastDistance())
	assert.Equal(t, 2112, cfg.Metrics.GetMetricsPort())
}
