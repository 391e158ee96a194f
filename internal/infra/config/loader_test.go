package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hmori/ghissues/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_NoFile(t *testing.T) {
	l := NewLoaderWithDir(t.TempDir())

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLimit, cfg.Limit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoader_Load_EmptyDir(t *testing.T) {
	l := NewLoaderWithDir("")

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLimit, cfg.Limit)
}

func TestLoader_Load_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "limit = 25\nbrowser = \"firefox\"\nlog_level = \"debug\"\n")

	l := NewLoaderWithDir(dir)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Limit)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoader_Load_PartialFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "browser = \"chromium\"\n")

	l := NewLoaderWithDir(dir)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "chromium", cfg.Browser)
	assert.Equal(t, domain.DefaultLimit, cfg.Limit)
}

func TestLoader_Load_InvalidLimitNormalized(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "limit = -5\n")

	l := NewLoaderWithDir(dir)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLimit, cfg.Limit)
}

func TestLoader_Load_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "limit = [not toml")

	l := NewLoaderWithDir(dir)
	_, err := l.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
