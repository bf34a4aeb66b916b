package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/arbor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
log_level: debug
parser:
  trailing_text: drop
  unquoted_values: true
server:
  port: 9090
cache:
  backend: redis
  ttl: 90s
  redis:
    addr: cache:6379
    db: 2
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "drop", cfg.Parser.TrailingText)
	assert.True(t, cfg.Parser.UnquotedValues)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxInputSize, "unset keys keep defaults")
	assert.Equal(t, config.CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "arbor:doc:", cfg.Cache.Prefix)
	assert.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestParse_EmptyDocumentIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: true"},
		{"bad log level", "log_level: loud"},
		{"bad trailing policy", "parser:\n  trailing_text: keep"},
		{"bad backend", "cache:\n  backend: memcached"},
		{"bad duration", "cache:\n  ttl: soon"},
		{"negative ttl", "cache:\n  ttl: -1s"},
		{"port range", "server:\n  port: 70000"},
		{"malformed yaml", "server: [port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cache:\n  backend: memory\n"), 0644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.CacheMemory, cfg.Cache.Backend)
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("default path missing", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}
