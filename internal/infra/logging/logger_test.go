package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	return string(data)
}

func TestLogger_WritesEntries(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, slog.LevelInfo)
	defer l.Close()

	l.Info("fetch", "fetched 3 issues")
	l.Error("open", "browser launch failed")

	content := readLog(t, dir)
	assert.Contains(t, content, "[INFO] [fetch] fetched 3 issues")
	assert.Contains(t, content, "[ERROR] [open] browser launch failed")
}

func TestLogger_LevelFilter(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, slog.LevelWarn)
	defer l.Close()

	l.Debug("fetch", "skipped")
	l.Info("fetch", "also skipped")
	l.Warn("fetch", "kept")

	content := readLog(t, dir)
	assert.NotContains(t, content, "skipped")
	assert.Contains(t, content, "[WARN] [fetch] kept")
}

func TestLogger_DisabledWithEmptyDir(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("fetch", "goes nowhere")
	assert.NoError(t, l.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
