package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yksugi/cliptools/configs"
	"github.com/yksugi/cliptools/tokens"
	"github.com/yksugi/cliptools/youtube"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	var (
		title        string
		description  string
		privacy      string
		chunkSizeMiB int
	)
	flag.StringVar(&title, "title", "", "video title (default: file name)")
	flag.StringVar(&description, "description", "", "video description")
	flag.StringVar(&privacy, "privacy", cfg.Privacy,
		fmt.Sprintf("privacy status (%s)", strings.Join(youtube.PrivacyStatuses, "/")))
	flag.IntVar(&chunkSizeMiB, "chunk-size-mib", cfg.ChunkSizeMiB, "upload chunk size in MiB (0: client default)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <video-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	videoFile := flag.Arg(0)

	if _, err := os.Stat(videoFile); err != nil {
		logrus.Fatalf("video file not found: %s", videoFile)
	}

	if !youtube.ValidPrivacy(privacy) {
		logrus.Fatalf("invalid privacy status %q (choose one of %s)",
			privacy, strings.Join(youtube.PrivacyStatuses, "/"))
	}

	if title == "" {
		title = youtube.DeriveTitle(videoFile)
	}
	if err := youtube.ValidateTitle(title); err != nil {
		logrus.Fatalf("invalid title: %v", err)
	}

	if kind, isVideo, err := youtube.SniffContainer(videoFile); err != nil {
		logrus.Warnf("could not inspect file: %v", err)
	} else if !isVideo {
		logrus.Warnf("%s does not look like a video container (detected: %s)", videoFile, kind)
	}

	ctx := context.Background()

	store := tokens.NewFileStore(tokens.FilePath())
	svc, err := youtube.NewService(ctx, store)
	if err != nil {
		logrus.Fatalf("authentication failed: %v", err)
	}

	id, err := youtube.Upload(ctx, svc, youtube.UploadOptions{
		File:         videoFile,
		Title:        title,
		Description:  description,
		Privacy:      privacy,
		ChunkSizeMiB: chunkSizeMiB,
	})
	if err != nil {
		logrus.Fatalf("upload failed: %v", err)
	}

	logrus.Infof("upload complete: video id %s", id)
	logrus.Infof("url: %s", youtube.WatchURL(id))
}
