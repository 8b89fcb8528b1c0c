package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const binary = "ffmpeg"

// InstallHint is printed when ffmpeg is missing from PATH.
const InstallHint = "install it with:\n" +
	"  Ubuntu/Debian: sudo apt-get install ffmpeg\n" +
	"  macOS: brew install ffmpeg"

// EnsureInstalled verifies that ffmpeg is available by running
// `ffmpeg -version`.
func EnsureInstalled(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, binary, "-version")
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "ffmpeg is not installed\n%s", InstallHint)
	}
	return nil
}

// ConcatArgs builds the concat-demuxer invocation. -c copy keeps the
// original streams untouched; -safe 0 permits absolute paths in the list.
func ConcatArgs(listPath, outputPath string) []string {
	return []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	}
}

// Concat joins the files named in listPath into outputPath without
// re-encoding.
func Concat(ctx context.Context, listPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, binary, ConcatArgs(listPath, outputPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
