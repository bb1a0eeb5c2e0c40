package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvStore, "")
	t.Setenv(EnvStorePath, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.TransitionDelay())
	assert.Equal(t, 800*time.Millisecond, cfg.WeatherDelay())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devmood.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: sqlite
  path: /tmp/prefs.db
board:
  transition_delay: 150ms
  start_tab: weather
`), 0o644))

	t.Setenv(EnvStore, "")
	t.Setenv(EnvStorePath, "")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 150*time.Millisecond, cfg.TransitionDelay())
	assert.Equal(t, "800ms", cfg.Board.WeatherDelay, "unset fields keep defaults")
	assert.Equal(t, "weather", cfg.Board.StartTab)

	t.Setenv(EnvStore, "memory")
	t.Setenv(EnvStorePath, "/elsewhere")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "/elsewhere", cfg.Storage.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devmood.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [oops"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }},
		{"bad transition", func(c *Config) { c.Board.TransitionDelay = "soon" }},
		{"negative weather delay", func(c *Config) { c.Board.WeatherDelay = "-1s" }},
		{"unknown tab", func(c *Config) { c.Board.StartTab = "news" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDelaysFallBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Board.TransitionDelay = "nope"
	cfg.Board.WeatherDelay = "0s"
	assert.Equal(t, 300*time.Millisecond, cfg.TransitionDelay())
	assert.Equal(t, 800*time.Millisecond, cfg.WeatherDelay())
}

func TestStorePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = "/custom/prefs.yaml"
	p, err := cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/prefs.yaml", p)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg.Storage.Path = ""
	p, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "preferences.yaml", filepath.Base(p))

	cfg.Storage.Driver = "sqlite"
	p, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "preferences.db", filepath.Base(p))
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvStore, "")
	t.Setenv(EnvStorePath, "")
	path := filepath.Join(t.TempDir(), "nested", "devmood.yaml")

	cfg := DefaultConfig()
	cfg.Board.StartTab = "music"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteDefault(t *testing.T) {
	t.Setenv(EnvStore, "")
	t.Setenv(EnvStorePath, "")
	path := filepath.Join(t.TempDir(), "devmood", "devmood.yaml")

	require.NoError(t, WriteDefault(path, false))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrExists)

	custom := DefaultConfig()
	custom.Board.StartTab = "weather"
	require.NoError(t, custom.Save(path))
	require.NoError(t, WriteDefault(path, true))
	loaded, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jokes", loaded.Board.StartTab)
}

func TestGetConfigPath_Env(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/devmood.yaml")
	p, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/devmood.yaml", p)
}
