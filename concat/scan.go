package concat

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// videoExtensions is the extension allow-list. Matching is on the
// lowercased extension only; file contents are never inspected.
var videoExtensions = map[string]struct{}{
	".mp4": {},
	".mov": {},
	".avi": {},
	".mkv": {},
	".m4v": {},
	".flv": {},
	".wmv": {},
}

// Video is an input clip: its absolute path and modification time. The
// mtime is informational only, ordering is by filename.
type Video struct {
	Path    string
	ModTime time.Time
}

// Name returns the base filename, the sort key.
func (v Video) Name() string {
	return filepath.Base(v.Path)
}

// SupportedExtensions lists the recognized extensions, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(videoExtensions))
	for ext := range videoExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// FindVideos lists the video files directly inside dir. Subdirectories
// are not descended into.
func FindVideos(dir string) ([]Video, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var videos []Video
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := videoExtensions[ext]; !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", entry.Name())
		}

		absPath, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s", entry.Name())
		}

		videos = append(videos, Video{
			Path:    absPath,
			ModTime: info.ModTime(),
		})
	}

	return videos, nil
}

// SortByName orders videos lexicographically by base filename. Clips
// exported with timestamped names (Google Photos and the like) end up in
// chronological order; nothing parses the timestamps themselves.
func SortByName(videos []Video) {
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].Name() < videos[j].Name()
	})
}
