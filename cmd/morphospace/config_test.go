package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServerConfig(t *testing.T) {
	cfg := defaultServerConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadServerConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`addr: ":9090"
db_path: morphemes.db
allowed_origins:
  - https://example.org
strategy: kdtree
`), 0o644))

	cfg, err := loadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "morphemes.db", cfg.DBPath)
	assert.Equal(t, []string{"https://example.org"}, cfg.AllowedOrigins)
	assert.Equal(t, "kdtree", cfg.Strategy)
	// Unset keys keep their defaults.
	assert.Empty(t, cfg.LexiconDir)
}

func TestLoadServerConfigMissing(t *testing.T) {
	_, err := loadServerConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
