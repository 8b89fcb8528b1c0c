package concat

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Manifest renders the ffmpeg concat-demuxer list: one
// `file '<absolute-path>'` line per video, in slice order.
func Manifest(videos []Video) []byte {
	var buf bytes.Buffer
	for _, video := range videos {
		fmt.Fprintf(&buf, "file '%s'\n", video.Path)
	}
	return buf.Bytes()
}

// WriteManifest writes the concat list to path.
func WriteManifest(videos []Video, path string) error {
	if err := os.WriteFile(path, Manifest(videos), 0644); err != nil {
		return errors.Wrapf(err, "failed to write concat list %s", path)
	}
	return nil
}

func removeManifest(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, "failed to remove concat list %s", path)
	}
	return nil
}
