package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/jackut/internal/infrastructure/config"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{
		Config:  config.LogConfig{Level: "warn", Format: "json"},
		Console: &buf,
	})
	require.NoError(t, err)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", zap.String("login", "alice"))
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"login":"alice"`)
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jackut.log")
	var buf bytes.Buffer

	log, closer, err := New(Options{
		Config:   config.Default().Log,
		FilePath: path,
		Console:  &buf,
	})
	require.NoError(t, err)

	log.Info("user registered", zap.String("login", "bob"))
	_ = log.Sync()
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"user registered"`)
	assert.Contains(t, buf.String(), "user registered")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Options{Config: config.LogConfig{Level: "loud"}})
	require.Error(t, err)
}
