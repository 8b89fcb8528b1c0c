package concat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMissingDir(t *testing.T) {
	work := t.TempDir()
	listPath := filepath.Join(work, "concat_list.txt")
	output := filepath.Join(work, "merged.mp4")

	err := Run(context.Background(), Options{
		InputDir:     filepath.Join(work, "does-not-exist"),
		Output:       output,
		ManifestPath: listPath,
	})
	require.Error(t, err)

	assert.NoFileExists(t, listPath)
	assert.NoFileExists(t, output)
}

func TestRunNoVideos(t *testing.T) {
	work := t.TempDir()
	inputDir := filepath.Join(work, "tmp")
	require.NoError(t, os.Mkdir(inputDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "readme.txt"), []byte("x"), 0644))

	listPath := filepath.Join(work, "concat_list.txt")
	output := filepath.Join(work, "merged.mp4")

	err := Run(context.Background(), Options{
		InputDir:     inputDir,
		Output:       output,
		ManifestPath: listPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no video files found")

	assert.NoFileExists(t, listPath)
	assert.NoFileExists(t, output)
}
