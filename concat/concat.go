package concat

import (
	"context"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yksugi/cliptools/configs"
	"github.com/yksugi/cliptools/ffmpeg"
)

// Options configures a concatenation run.
type Options struct {
	InputDir string
	Output   string
	KeepList bool

	// ManifestPath overrides where the concat list is written. Empty
	// means configs.ManifestName in the working directory.
	ManifestPath string
}

// Run scans InputDir, sorts the clips by filename and stream-copies them
// into Output. The whole run is sequential and blocking.
func Run(ctx context.Context, opts Options) error {
	logrus.Infof("scanning directory: %s", opts.InputDir)

	videos, err := FindVideos(opts.InputDir)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return errors.Errorf("no video files found in %s (supported: %v)",
			opts.InputDir, SupportedExtensions())
	}

	logrus.Infof("found %d video files", len(videos))

	SortByName(videos)
	printOrder(videos)

	if err := ffmpeg.EnsureInstalled(ctx); err != nil {
		return err
	}

	listPath := opts.ManifestPath
	if listPath == "" {
		listPath = configs.ManifestName
	}
	if err := WriteManifest(videos, listPath); err != nil {
		return err
	}
	logrus.Infof("wrote concat list: %s", listPath)

	logrus.Infof("concatenating into %s", opts.Output)
	if err := ffmpeg.Concat(ctx, listPath, opts.Output); err != nil {
		return err
	}
	logrus.Infof("done: %s", opts.Output)

	if opts.KeepList {
		return nil
	}
	if err := removeManifest(listPath); err != nil {
		return err
	}
	logrus.Infof("removed concat list: %s", listPath)

	return nil
}

// printOrder logs the clips in merge order with their mtimes. Width-aware
// padding keeps the column aligned for non-ASCII filenames.
func printOrder(videos []Video) {
	width := 0
	for _, video := range videos {
		if w := runewidth.StringWidth(video.Name()); w > width {
			width = w
		}
	}

	logrus.Info("merge order (by filename):")
	for i, video := range videos {
		logrus.Infof("  %d. %s  (modified: %s)",
			i+1,
			runewidth.FillRight(video.Name(), width),
			video.ModTime.Format("2006-01-02 15:04:05"),
		)
	}
}
