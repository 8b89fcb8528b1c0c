package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/yksugi/cliptools/concat"
	"github.com/yksugi/cliptools/configs"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	var (
		inputDir string
		output   string
		keepList bool
	)
	flag.StringVar(&inputDir, "input-dir", cfg.InputDir, "directory containing the video files")
	flag.StringVar(&output, "output", cfg.Output, "output file name")
	flag.BoolVar(&keepList, "keep-list", false, "keep the concat list file after merging")
	flag.Parse()

	err = concat.Run(context.Background(), concat.Options{
		InputDir: inputDir,
		Output:   output,
		KeepList: keepList,
	})
	if err != nil {
		logrus.Fatalf("concat failed: %v", err)
	}
}
