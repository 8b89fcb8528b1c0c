package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLIPTOOLS_CONFIG", filepath.Join(t.TempDir(), "cliptools.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, "private", cfg.Privacy)
	assert.Zero(t, cfg.ChunkSizeMiB)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cliptools.yaml")
	content := "input_dir: clips\noutput: holiday.mp4\nprivacy: unlisted\nchunk_size_mib: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("CLIPTOOLS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "clips", cfg.InputDir)
	assert.Equal(t, "holiday.mp4", cfg.Output)
	assert.Equal(t, "unlisted", cfg.Privacy)
	assert.Equal(t, 8, cfg.ChunkSizeMiB)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cliptools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: holiday.mp4\n"), 0644))
	t.Setenv("CLIPTOOLS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	// Unset fields keep their defaults.
	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, "holiday.mp4", cfg.Output)
	assert.Equal(t, "private", cfg.Privacy)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cliptools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))
	t.Setenv("CLIPTOOLS_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}
