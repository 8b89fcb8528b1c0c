package youtube

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "simple", path: "clip1.mov", want: "clip1"},
		{name: "with directory", path: "/videos/tmp/clip1.mov", want: "clip1"},
		{name: "no extension", path: "clip1", want: "clip1"},
		{name: "multiple dots", path: "trip.day1.mp4", want: "trip.day1"},
		{name: "non-ascii", path: "旅行動画.mp4", want: "旅行動画"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.path))
		})
	}
}

func TestValidPrivacy(t *testing.T) {
	assert.True(t, ValidPrivacy("public"))
	assert.True(t, ValidPrivacy("private"))
	assert.True(t, ValidPrivacy("unlisted"))

	assert.False(t, ValidPrivacy(""))
	assert.False(t, ValidPrivacy("Private"))
	assert.False(t, ValidPrivacy("hidden"))
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("clip1"))
	assert.NoError(t, ValidateTitle(strings.Repeat("a", 100)))
	assert.Error(t, ValidateTitle(strings.Repeat("a", 101)))
	assert.Error(t, ValidateTitle(""))

	// Full-width characters count double.
	assert.NoError(t, ValidateTitle(strings.Repeat("あ", 50)))
	assert.Error(t, ValidateTitle(strings.Repeat("あ", 51)))
}

func TestNewVideoResource(t *testing.T) {
	video := newVideoResource(UploadOptions{
		Title:       "clip1",
		Description: "a short clip",
		Privacy:     "unlisted",
	})

	require.NotNil(t, video.Snippet)
	assert.Equal(t, "clip1", video.Snippet.Title)
	assert.Equal(t, "a short clip", video.Snippet.Description)
	assert.Equal(t, "22", video.Snippet.CategoryId)

	require.NotNil(t, video.Status)
	assert.Equal(t, "unlisted", video.Status.PrivacyStatus)
	assert.False(t, video.Status.SelfDeclaredMadeForKids)
	assert.Contains(t, video.Status.ForceSendFields, "SelfDeclaredMadeForKids")
}

func TestSniffContainer(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "notes.mp4")
	require.NoError(t, os.WriteFile(textPath, []byte("this is not a video"), 0644))

	_, isVideo, err := SniffContainer(textPath)
	require.NoError(t, err)
	assert.False(t, isVideo)
}

func TestSniffContainerMissingFile(t *testing.T) {
	_, _, err := SniffContainer(filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", WatchURL("abc123"))
}
