package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
addr: ":9090"
logLevel: debug
pretty: true
minify: false
shutdownTimeout: 3s
guard:
  pattern: /private/:rest*
metadata:
  title: Custom
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Pretty)
	assert.False(t, cfg.Minify)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/private/:rest*", cfg.Guard.Pattern)
	assert.Equal(t, "/", cfg.Guard.Target)
	assert.Equal(t, "Custom", cfg.Metadata.Title)
	assert.Equal(t, Default().Metadata.Description, cfg.Metadata.Description)
}

func TestLoadEmptyValuesFallBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "addr: \"\"\nguard:\n  pattern: \"\"\n  target: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "addr: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
