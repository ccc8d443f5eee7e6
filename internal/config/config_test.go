package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAbsentFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.DebounceMS)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Empty(t, cfg.DataDir)
	assert.False(t, cfg.Development)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projex"), 0o755))
	content := []byte("data_dir: /tmp/projex-data\ndebounce_ms: 150\ndevelopment: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projex", "config.yaml"), content, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/projex-data", cfg.DataDir)
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce())
	assert.True(t, cfg.Development)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projex"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projex", "config.yaml"), []byte("::nope"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestNonPositiveDebounceFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projex"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projex", "config.yaml"), []byte("debounce_ms: -5\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.DebounceMS)
}
