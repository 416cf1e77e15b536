package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("default file round trip", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, WriteDefault(dir))
		assert.True(t, Exists(dir))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("write then load", func(t *testing.T) {
		dir := t.TempDir()
		want := Default()
		want.Storage = StorageConfig{Driver: DriverFile, Path: "snapshots"}
		want.Log.Level = "debug"
		require.NoError(t, Write(dir, want))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, want, cfg)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("JACKUT_STORAGE_DRIVER", DriverFile)
		t.Setenv("JACKUT_STORAGE_PATH", "/tmp/jackut")
		t.Setenv("JACKUT_LOG_LEVEL", "warn")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, DriverFile, cfg.Storage.Driver)
		assert.Equal(t, "/tmp/jackut", cfg.Storage.Path)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("invalid driver", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("storage:\n  driver: mongo\n"), 0644))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
		require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("storage: [\n"), 0644))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})
}

func TestWriteDefault_RendersDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	data, err := os.ReadFile(ConfigFilePath(dir))
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# Jackut Configuration"))
	assert.Contains(t, content, "driver: sqlite")
	assert.Contains(t, content, "level: info")
	assert.Contains(t, content, "max_size_mb: 10")
}

func TestWrite_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	want := Default()
	want.Log.Format = "json"
	require.NoError(t, Write(dir, want))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	err := WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStoragePath(t *testing.T) {
	tests := []struct {
		name     string
		storage  StorageConfig
		expected string
	}{
		{name: "sqlite default", storage: StorageConfig{Driver: DriverSQLite}, expected: filepath.Join("base", ".jackut", "jackut.db")},
		{name: "file default", storage: StorageConfig{Driver: DriverFile}, expected: filepath.Join("base", ".jackut", "data")},
		{name: "relative path", storage: StorageConfig{Driver: DriverSQLite, Path: "x.db"}, expected: filepath.Join("base", ".jackut", "x.db")},
		{name: "absolute path", storage: StorageConfig{Driver: DriverSQLite, Path: "/var/x.db"}, expected: "/var/x.db"},
		{name: "in memory", storage: StorageConfig{Driver: DriverSQLite, Path: ":memory:"}, expected: ":memory:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Storage = tt.storage
			assert.Equal(t, tt.expected, cfg.StoragePath("base"))
		})
	}
}

func TestLogFilePath(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.LogFilePath("base"))

	cfg.Log.File = "jackut.log"
	assert.Equal(t, filepath.Join("base", ".jackut", "jackut.log"), cfg.LogFilePath("base"))
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("base", ".jackut", "config.yaml"), ConfigFilePath("base"))
}
