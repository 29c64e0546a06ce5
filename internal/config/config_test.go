package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NOTEPAD_CONFIG", "NOTEPAD_DB", "LOG_LEVEL", "DEBUG", "NOTEPAD_JSON_LOGS"} {
		t.Setenv(key, "")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Equal(t, DefaultWindowWidth, cfg.WindowWidth)
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")

	content := `database = "/tmp/my-notes.db"
log_level = "warn"
json_logs = true
window_width = 600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("NOTEPAD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my-notes.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, 600, cfg.WindowWidth)
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)

	t.Setenv("NOTEPAD_DB", "override.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NOTEPAD_JSON_LOGS", "0")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "override.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
}

func TestLoadDebugFlag(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadWorkingDirectoryFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte(`database = "local.db"`), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local.db", cfg.DatabasePath)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	t.Setenv("NOTEPAD_CONFIG", filepath.Join(dir, "missing.toml"))
	_, err := Load()
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("database = = broken"), 0644))
	t.Setenv("NOTEPAD_CONFIG", bad)
	_, err = Load()
	assert.Error(t, err)
}
