// Package encode writes captured frames to a video file by streaming raw
// RGB24 data into an ffmpeg subprocess over stdin.
package encode

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

const (
	// stderrTailBytes bounds how much encoder output is attached to errors.
	stderrTailBytes = 512
	// closeWaitTimeout is how long Close waits for ffmpeg to flush and exit
	// after stdin is closed before killing it.
	closeWaitTimeout = 5 * time.Second
)

// Options configure the encoder process.
type Options struct {
	// FFmpegPath is the binary to invoke. Empty means "ffmpeg" from PATH.
	FFmpegPath string
	// OutputPath is the destination file. Its extension picks the codec.
	OutputPath string
	// Width and Height are the frame geometry. Every frame written must
	// match exactly.
	Width  int
	Height int
	// FPS is declared to the container so playback speed matches capture.
	FPS    float64
	Logger *slog.Logger
}

func (o *Options) validate() error {
	if o.FFmpegPath == "" {
		o.FFmpegPath = "ffmpeg"
	}
	if o.OutputPath == "" {
		return errors.New("encode: output path is empty")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("encode: invalid frame geometry %dx%d", o.Width, o.Height)
	}
	if o.FPS <= 0 {
		return fmt.Errorf("encode: invalid frame rate %v", o.FPS)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return nil
}

// FFmpeg pipes frames into a running ffmpeg process. Write is called from
// the recording goroutine only; Close may race with nothing because the
// recorder owns teardown.
type FFmpeg struct {
	opts       Options
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     *lockedBuffer
	logger     *slog.Logger
	frameBytes int

	waitCh    chan error
	closeOnce sync.Once
	closeErr  error
}

// NewFFmpeg spawns the encoder. A missing binary or a process that fails to
// start is reported here, before any frame is grabbed.
func NewFFmpeg(opts Options) (*FFmpeg, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(opts.FFmpegPath); err != nil {
		return nil, fmt.Errorf("encode: ffmpeg binary %q: %w", opts.FFmpegPath, err)
	}

	cmd := exec.Command(opts.FFmpegPath, buildArgs(opts)...)
	stderr := &lockedBuffer{}
	cmd.Stderr = stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("encode: open stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("encode: start ffmpeg: %w", err)
	}

	s := &FFmpeg{
		opts:       opts,
		cmd:        cmd,
		stdin:      stdin,
		stderr:     stderr,
		logger:     opts.Logger,
		frameBytes: opts.Width * opts.Height * 3,
		waitCh:     make(chan error, 1),
	}
	go func() {
		s.waitCh <- cmd.Wait()
	}()

	s.logger.Info("encoder started",
		slog.String("output", opts.OutputPath),
		slog.String("codec", CodecFor(opts.OutputPath)),
		slog.String("size", fmt.Sprintf("%dx%d", opts.Width, opts.Height)),
		slog.Float64("fps", opts.FPS),
	)
	return s, nil
}

// Write streams one frame to the encoder. The frame must match the geometry
// the process was started with; rawvideo input has no headers, so a short or
// oversized buffer would silently shear every following frame.
func (s *FFmpeg) Write(f *capture.Frame) error {
	if len(f.Pix) != s.frameBytes {
		return fmt.Errorf("encode: frame is %d bytes, encoder expects %d (%dx%d)",
			len(f.Pix), s.frameBytes, s.opts.Width, s.opts.Height)
	}
	if _, err := s.stdin.Write(f.Pix); err != nil {
		if tail := s.stderr.Tail(stderrTailBytes); tail != "" {
			return fmt.Errorf("encode: pipe frame: %w: %s", err, tail)
		}
		return fmt.Errorf("encode: pipe frame: %w", err)
	}
	return nil
}

// Close finalizes the file. Closing stdin signals end of stream so ffmpeg
// flushes buffered frames and writes the container trailer; without the
// trailer the output is unplayable. Safe to call more than once.
func (s *FFmpeg) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if err := s.stdin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("encode: close stdin: %w", err))
		}
		select {
		case err := <-s.waitCh:
			if err != nil {
				errs = append(errs, fmt.Errorf("encode: ffmpeg exited: %w: %s", err, s.stderr.Tail(stderrTailBytes)))
			}
		case <-time.After(closeWaitTimeout):
			s.logger.Warn("encoder did not exit, killing", slog.Duration("waited", closeWaitTimeout))
			if err := s.cmd.Process.Kill(); err != nil {
				errs = append(errs, fmt.Errorf("encode: kill ffmpeg: %w", err))
			}
			<-s.waitCh
			errs = append(errs, fmt.Errorf("encode: ffmpeg hung after stdin close: %s", s.stderr.Tail(stderrTailBytes)))
		}
		s.closeErr = errors.Join(errs...)
		if s.closeErr == nil {
			s.logger.Info("encoder finalized", slog.String("output", s.opts.OutputPath))
		}
	})
	return s.closeErr
}
