package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/taproom/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, "taproom.yaml", `
log:
  level: debug
  format: json
menu:
  path: /etc/taproom/menu.yaml
  quantity_nouns: [glass, glasses]
cache:
  backend: redis
  ttl: 30s
  redis:
    addr: redis:6379
`)
	t.Setenv("TAPROOM_CACHE_TTL", "1m")
	t.Setenv("TAPROOM_CACHE_MAX_ENTRIES", "500")
	t.Setenv("TAPROOM_HTTP_ADDR", ":9090")
	t.Setenv("TAPROOM_LOG_LEVEL", "  ")

	cfg, err := config.NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/etc/taproom/menu.yaml", cfg.Menu.Path)
	assert.Equal(t, []string{"glass", "glasses"}, cfg.Menu.QuantityNouns)
	assert.Equal(t, config.CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, "taproom:", cfg.Cache.Redis.Prefix)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 500, cfg.Cache.MaxEntries)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_EnvLists(t *testing.T) {
	t.Setenv("TAPROOM_QUANTITY_NOUNS", "glass, glasses,,bottle")
	t.Setenv("TAPROOM_HTTP_METRICS", "false")
	t.Setenv("TAPROOM_MAX_INPUT_SIZE", "128")

	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"glass", "glasses", "bottle"}, cfg.Menu.QuantityNouns)
	assert.False(t, cfg.HTTP.Metrics)
	assert.Equal(t, 128, cfg.Runner.MaxInputSize)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "logging:\n  level: debug\n")
		_, err := config.NewLoader(path).Load()
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfig(t, "taproom.toml", "")
		_, err := config.NewLoader(path).Load()
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewLoader(filepath.Join(t.TempDir(), "none.yaml")).Load()
		assert.Error(t, err)
	})

	t.Run("bad env number", func(t *testing.T) {
		t.Setenv("TAPROOM_REDIS_DB", "zero")
		_, err := config.NewLoader("").Load()
		assert.ErrorContains(t, err, "TAPROOM_REDIS_DB")
	})

	t.Run("invalid backend", func(t *testing.T) {
		t.Setenv("TAPROOM_CACHE_BACKEND", "memcached")
		_, err := config.NewLoader("").Load()
		assert.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("TAPROOM_LOG_LEVEL", "chatty")
		_, err := config.NewLoader("").Load()
		assert.Error(t, err)
	})
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "empty.yml", "")
	cfg, err := config.NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}
