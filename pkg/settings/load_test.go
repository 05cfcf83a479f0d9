package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Empty(t, cfg.Logger.FileLogName)
	assert.Equal(t, defaultMaxSize, cfg.Logger.MaxSize)
	require.NotNil(t, cfg.Queue.InitialCapacity)
	assert.Equal(t, 8, *cfg.Queue.InitialCapacity)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logger:
  log_level: debug
  file_log_name: /tmp/ringqueue.log
  max_backups: 5
  compress: true
queue:
  initial_capacity: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, "/tmp/ringqueue.log", cfg.Logger.FileLogName)
	assert.Equal(t, 5, cfg.Logger.MaxBackups)
	assert.True(t, cfg.Logger.Compress)
	require.NotNil(t, cfg.Queue.InitialCapacity)
	assert.Equal(t, 0, *cfg.Queue.InitialCapacity, "explicit zero capacity must survive defaults")
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative_capacity", "queue:\n  initial_capacity: -1\n"},
		{"unknown_level", "logger:\n  log_level: loud\n"},
		{"negative_max_age", "logger:\n  max_age: -3\n"},
		{"unknown_field", "queue:\n  size: 4\n"},
		{"malformed_yaml", "queue: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
