package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "player_data.json", cfg.Storage.File.Path)
	assert.Zero(t, cfg.Game.PlaysPerDay)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
storage:
  type: redis
  redis:
    url: redis://example:6379
    pool_size: 20
game:
  plays_per_day: 5
  points_per_correct: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "redis://example:6379", cfg.Storage.Redis.URL)
	assert.Equal(t, 20, cfg.Storage.Redis.PoolSize)
	assert.Equal(t, 5, cfg.Game.PlaysPerDay)
	assert.Equal(t, 25, cfg.Game.PointsPerCorrect)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	// Unset sections keep their defaults.
	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "player_data.json", cfg.Storage.File.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [what"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
