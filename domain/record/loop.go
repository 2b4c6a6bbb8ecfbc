package record

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
	"github.com/alxndrztsv/screen-recorder/domain/overlay"
)

const statsLogInterval = 5 * time.Second

// FrameSource captures the pixels of the recorded region.
type FrameSource interface {
	Grab() (*capture.Frame, error)
	Region() capture.Region
}

// FrameSink consumes composited frames in order and finalizes the video
// stream on Close. Close must be safe to call once after the last Write.
type FrameSink interface {
	Write(*capture.Frame) error
	Close() error
}

// PointerProbe reports the global pointer position in screen coordinates.
type PointerProbe interface {
	Position() (x, y int)
}

// Previewer receives composited frames for live display. Offer must not
// block and must copy whatever it needs before returning; it reports whether
// the frame was taken, false meaning it was dropped to keep up.
type Previewer interface {
	Offer(f *capture.Frame, seq uint64) bool
}

// Options wires a Recorder's collaborators.
type Options struct {
	Source  FrameSource
	Sink    FrameSink
	Probe   PointerProbe
	Sprite  *overlay.Sprite // nil records without a cursor overlay
	Preview Previewer       // nil records headless
	Signal  *StopSignal
	Logger  *slog.Logger
	FPS     float64
}

// Recorder drives the per-frame pipeline: grab, overlay, encode, preview,
// pace. One Recorder records one region to one sink, then is done.
type Recorder struct {
	source  FrameSource
	sink    FrameSink
	probe   PointerProbe
	sprite  *overlay.Sprite
	preview Previewer
	signal  *StopSignal
	logger  *slog.Logger
	period  time.Duration

	state     atomic.Int32
	closeOnce sync.Once
	done      chan struct{}

	frames        atomic.Uint64
	captureErrors atomic.Uint64
	overlaySkips  atomic.Uint64
	previewDrops  atomic.Uint64
	cycleNanos    atomic.Uint64
	grabNanos     atomic.Uint64
	startedNanos  atomic.Int64
}

// NewRecorder validates the wiring and returns a ready-to-run recorder.
func NewRecorder(opts Options) (*Recorder, error) {
	if opts.Source == nil {
		return nil, errors.New("record: frame source is required")
	}
	if opts.Sink == nil {
		return nil, errors.New("record: frame sink is required")
	}
	if opts.Signal == nil {
		return nil, errors.New("record: stop signal is required")
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("record: fps must be positive, got %v", opts.FPS)
	}
	if opts.Sprite != nil && opts.Probe == nil {
		return nil, errors.New("record: pointer probe is required when a sprite is set")
	}
	return &Recorder{
		source:  opts.Source,
		sink:    opts.Sink,
		probe:   opts.Probe,
		sprite:  opts.Sprite,
		preview: opts.Preview,
		signal:  opts.Signal,
		logger:  opts.Logger,
		period:  time.Duration(float64(time.Second) / opts.FPS),
		done:    make(chan struct{}),
	}, nil
}

// Period returns the target frame period (1/fps).
func (r *Recorder) Period() time.Duration { return r.period }

// State returns the current lifecycle state. Safe from any goroutine.
func (r *Recorder) State() State { return State(r.state.Load()) }

// Done is closed after the sink has been finalized and the recorder reached
// the stopped state.
func (r *Recorder) Done() <-chan struct{} { return r.done }

// Run drives the recording until the stop signal fires or the sink fails.
// Cycles run strictly in sequence: frame N+1 is never grabbed before frame
// N's write completed. Pacing sleeps max(0, period-elapsed) after each
// cycle; an overrun is not compensated later, so sustained slow cycles
// lower the effective output rate below the target instead of dropping
// frames. The stop signal is polled at cycle boundaries, so the worst-case
// stop latency is one period. The sink is closed exactly once on every exit
// path.
func (r *Recorder) Run() error {
	r.setState(StateRunning)
	r.startedNanos.Store(time.Now().UnixNano())
	defer r.shutdown()

	statsTicker := time.NewTicker(statsLogInterval)
	defer statsTicker.Stop()

	var seq uint64
	for !r.signal.Stopped() {
		cycleStart := time.Now()

		frame, err := r.source.Grab()
		if err != nil {
			r.captureErrors.Add(1)
			if r.logger != nil {
				r.logger.Warn("capture failed, skipping cycle", "error", err)
			}
			r.pace(cycleStart)
			continue
		}
		r.grabNanos.Add(uint64(time.Since(cycleStart).Nanoseconds()))

		if r.sprite != nil {
			if err := r.applyOverlay(frame); err != nil {
				r.overlaySkips.Add(1)
				if r.logger != nil {
					r.logger.Warn("overlay failed, writing frame without cursor", "error", err)
				}
			}
		}

		if err := r.sink.Write(frame); err != nil {
			capture.RecycleFrame(frame)
			r.signal.Trigger("sink failure")
			if r.logger != nil {
				r.logger.Error("video sink rejected frame", "frame", seq, "error", err)
			}
			return fmt.Errorf("write frame %d: %w", seq, err)
		}
		seq++
		r.frames.Add(1)

		if r.preview != nil && !r.preview.Offer(frame, seq) {
			r.previewDrops.Add(1)
		}
		capture.RecycleFrame(frame)

		elapsed := time.Since(cycleStart)
		r.cycleNanos.Add(uint64(elapsed.Nanoseconds()))

		select {
		case <-statsTicker.C:
			r.logStats()
		default:
		}

		if sleep := r.period - elapsed; sleep > 0 {
			time.Sleep(sleep)
		}
	}
	if r.logger != nil {
		r.logger.Info("stop requested", "reason", r.signal.Reason(), "frames", r.frames.Load())
	}
	return nil
}

// applyOverlay samples the pointer, maps it into frame-local coordinates and
// blends the sprite in place. Failures, including panics, are contained here
// so a bad cycle degrades to a frame without the cursor rather than ending
// the recording.
func (r *Recorder) applyOverlay(frame *capture.Frame) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("overlay panic: %v", rec)
		}
	}()
	if r.probe == nil {
		return errors.New("no pointer probe")
	}
	px, py := r.probe.Position()
	origin := r.source.Region().Bounds.Min
	overlay.Blend(frame, r.sprite, px-origin.X, py-origin.Y)
	return nil
}

// pace sleeps out the remainder of the cycle budget.
func (r *Recorder) pace(cycleStart time.Time) {
	if sleep := r.period - time.Since(cycleStart); sleep > 0 {
		time.Sleep(sleep)
	}
}

func (r *Recorder) shutdown() {
	r.setState(StateStopping)
	r.closeOnce.Do(func() {
		if err := r.sink.Close(); err != nil && r.logger != nil {
			r.logger.Error("closing video sink", "error", err)
		}
	})
	r.logStats()
	r.setState(StateStopped)
	close(r.done)
}

func (r *Recorder) setState(next State) {
	prev := State(r.state.Swap(int32(next)))
	if prev != next && r.logger != nil {
		r.logger.Debug("recorder state transition", "from", prev.String(), "to", next.String())
	}
}

// Stats returns a snapshot of the loop counters.
func (r *Recorder) Stats() Stats {
	frames := r.frames.Load()
	s := Stats{
		Frames:        frames,
		CaptureErrors: r.captureErrors.Load(),
		OverlaySkips:  r.overlaySkips.Load(),
		PreviewDrops:  r.previewDrops.Load(),
	}
	if frames > 0 {
		s.AvgCycle = time.Duration(r.cycleNanos.Load() / frames)
		s.AvgGrab = time.Duration(r.grabNanos.Load() / frames)
	}
	if started := r.startedNanos.Load(); started > 0 {
		s.StartedAt = time.Unix(0, started)
		s.Elapsed = time.Since(s.StartedAt)
		if secs := s.Elapsed.Seconds(); secs > 0 {
			s.EffectiveFPS = float64(frames) / secs
		}
	}
	return s
}

func (r *Recorder) logStats() {
	if r.logger == nil {
		return
	}
	stats := r.Stats()
	r.logger.Debug("recorder.stats",
		"frames", stats.Frames,
		"capture_errors", stats.CaptureErrors,
		"overlay_skips", stats.OverlaySkips,
		"preview_drops", stats.PreviewDrops,
		"avg_cycle", stats.AvgCycle,
		"avg_grab", stats.AvgGrab,
		"effective_fps", stats.EffectiveFPS,
	)
}
