package encode

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Codec identifiers handed to ffmpeg's -c:v flag.
const (
	CodecH264  = "libx264"
	CodecMPEG4 = "mpeg4"
)

// CodecFor selects the video encoder from the output file extension:
// .mp4 gets libx264, anything else falls back to the mpeg4 encoder.
func CodecFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp4") {
		return CodecH264
	}
	return CodecMPEG4
}

// buildArgs assembles the ffmpeg invocation: raw RGB frames stream in on
// stdin at the capture geometry and rate, the muxer is picked from the
// output extension.
func buildArgs(o Options) []string {
	fps := strconv.FormatFloat(o.FPS, 'f', -1, 64)
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", o.Width, o.Height),
		"-framerate", fps,
		"-i", "pipe:0",
	}
	codec := CodecFor(o.OutputPath)
	args = append(args, "-c:v", codec)
	switch codec {
	case CodecH264:
		args = append(args, "-preset", "ultrafast", "-pix_fmt", "yuv420p", "-movflags", "+faststart")
	case CodecMPEG4:
		args = append(args, "-q:v", "5")
	}
	args = append(args, "-r", fps, o.OutputPath)
	return args
}
