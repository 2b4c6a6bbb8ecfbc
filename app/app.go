package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	. "modernc.org/tk9.0"

	"github.com/alxndrztsv/screen-recorder/config"
	"github.com/alxndrztsv/screen-recorder/debug"
	"github.com/alxndrztsv/screen-recorder/domain/record"
	"github.com/alxndrztsv/screen-recorder/ui/presenter"
	"github.com/alxndrztsv/screen-recorder/ui/theme"
)

const (
	tick          = 100 * time.Millisecond
	debugInterval = 5 * time.Second
)

type app struct {
	c      *AppContainer
	logger *slog.Logger

	afterID    string
	closing    bool
	resetShown bool
	runErr     chan error
}

// NewApp builds the application from a resolved configuration.
// cursorExplicit marks whether the sprite path came from the user; see
// BuildContainer.
func NewApp(cfg *config.Config, cursorExplicit bool, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, cursorExplicit, logger)
	if err != nil {
		return nil, err
	}
	return &app{c: c, logger: logger, runErr: make(chan error, 1)}, nil
}

// Run shows the preview window, starts the hotkey listener and the recording
// goroutine, and blocks until the recording stopped and the window is gone.
// The returned error is nil for user-initiated stops.
func (a *app) Run() error {
	c := a.c
	cfg := c.Config

	winW := c.Region.Bounds.Dx()/previewDivisor + 16
	winH := c.Region.Bounds.Dy()/previewDivisor + 56
	App.WmTitle("Screen Recorder")
	WmProtocol(App, "WM_DELETE_WINDOW", c.Control.WindowClosed)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", winW, winH))
	theme.InitStyles()
	c.RootView.Build(c.Control.StopClicked, c.Control.QuitKey)

	c.Loop = presenter.NewLoop(
		presenter.NewStatePresenter(c.Recorder, c.RootView),
		presenter.NewSessionPresenter(c.Session, c.Recorder, c.RootView),
		presenter.NewPreviewPresenter(c.Preview, c.RootView),
		a.schedule,
	)

	if cfg.Debug {
		debug.StartGoroutineLogger(debugInterval, a.logger)
		debug.StartMemLogger(debugInterval, a.logger)
	}

	// Ctrl-C finalizes the file like any other stop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			c.Signal.Trigger("interrupt")
		case <-c.Recorder.Done():
		}
		signal.Stop(sigCh)
	}()

	c.Hotkey.Start(func() { c.Signal.Trigger("hotkey") })
	go func() { a.runErr <- c.Recorder.Run() }()

	a.logger.Info("recording started",
		"region", c.Region.String(),
		"output", cfg.OutputPath,
		"fps", cfg.FPS,
		"cursor_overlay", c.Sprite != nil,
		"hint", "press F5, q, or close the window to stop",
	)

	a.schedule()
	App.Wait()

	err := <-a.runErr
	c.Hotkey.Stop()
	a.logger.Info("recording finished",
		"reason", c.Signal.Reason(),
		"frames", c.Recorder.Stats().Frames,
		"output", cfg.OutputPath,
	)
	return err
}

// update runs on Tk's event loop thread every tick. It drives the
// presenters and tears the window down once the recorder is fully stopped,
// which makes App.Wait return.
func (a *app) update() {
	if a.closing {
		return
	}
	state := a.c.Recorder.State()
	if state == record.StateStopping && !a.resetShown {
		a.resetShown = true
		a.c.RootView.PreviewReset()
	}
	if state == record.StateStopped {
		a.closing = true
		if a.afterID != "" {
			TclAfterCancel(a.afterID)
		}
		Destroy(App)
		return
	}
	a.c.Loop.Tick()
}

func (a *app) schedule() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}
