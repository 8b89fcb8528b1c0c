package youtube

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
	ytapi "google.golang.org/api/youtube/v3"
)

const (
	// categoryID 22 is "People & Blogs".
	categoryID = "22"

	// maxTitleWidth is YouTube's title limit in display columns.
	maxTitleWidth = 100
)

// PrivacyStatuses are the accepted --privacy values.
var PrivacyStatuses = []string{"public", "private", "unlisted"}

// UploadOptions describes one upload.
type UploadOptions struct {
	File        string
	Title       string
	Description string
	Privacy     string

	// ChunkSizeMiB is the resumable-upload chunk size. Zero means the
	// client default.
	ChunkSizeMiB int
}

// ValidPrivacy reports whether s is one of the accepted privacy statuses.
func ValidPrivacy(s string) bool {
	for _, status := range PrivacyStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DeriveTitle derives the default title from the file name: base name
// without extension.
func DeriveTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidateTitle rejects titles wider than YouTube's limit.
func ValidateTitle(title string) error {
	if title == "" {
		return errors.New("title must not be empty")
	}
	if width := runewidth.StringWidth(title); width > maxTitleWidth {
		return errors.Errorf("title too long: %d display columns, max %d", width, maxTitleWidth)
	}
	return nil
}

// SniffContainer reads the file header and reports the detected container
// extension and whether it looks like a video at all.
func SniffContainer(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to open video file")
	}
	defer f.Close()

	// filetype needs at most 262 bytes to classify.
	head := make([]byte, 262)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", false, errors.Wrap(err, "failed to read video header")
	}
	head = head[:n]

	kind, err := filetype.Match(head)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to detect file type")
	}
	return kind.Extension, filetype.IsVideo(head), nil
}

// newVideoResource builds the insert body: snippet metadata plus the
// privacy status and the not-for-kids declaration.
func newVideoResource(opts UploadOptions) *ytapi.Video {
	return &ytapi.Video{
		Snippet: &ytapi.VideoSnippet{
			Title:       opts.Title,
			Description: opts.Description,
			CategoryId:  categoryID,
		},
		Status: &ytapi.VideoStatus{
			PrivacyStatus:           opts.Privacy,
			SelfDeclaredMadeForKids: false,
			// False is the meaningful answer here, not an omitted field.
			ForceSendFields: []string{"SelfDeclaredMadeForKids"},
		},
	}
}

// Upload sends the file as a resumable upload and returns the new video
// ID. Progress is logged after each transmitted chunk. The call blocks
// until the upload finishes or fails; the API client owns the chunk
// protocol.
func Upload(ctx context.Context, svc *ytapi.Service, opts UploadOptions) (string, error) {
	f, err := os.Open(opts.File)
	if err != nil {
		return "", errors.Wrap(err, "failed to open video file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", errors.Wrap(err, "failed to stat video file")
	}
	size := info.Size()

	chunkSize := googleapi.DefaultUploadChunkSize
	if opts.ChunkSizeMiB > 0 {
		chunkSize = opts.ChunkSizeMiB << 20
	}

	call := svc.Videos.Insert([]string{"snippet", "status"}, newVideoResource(opts))
	call.Media(f, googleapi.ChunkSize(chunkSize))
	call.ProgressUpdater(func(current, total int64) {
		if total <= 0 {
			total = size
		}
		if total > 0 {
			logrus.Infof("progress: %d%%", current*100/total)
		}
	})

	logrus.Infof("uploading: %s (%d bytes)", opts.File, size)
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "upload failed")
	}
	return resp.Id, nil
}

// WatchURL builds the public viewing URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
