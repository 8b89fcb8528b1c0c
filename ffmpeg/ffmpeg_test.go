package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatArgs(t *testing.T) {
	args := ConcatArgs("concat_list.txt", "merged_video.mp4")

	want := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", "concat_list.txt",
		"-c", "copy",
		"merged_video.mp4",
	}
	assert.Equal(t, want, args)
}
