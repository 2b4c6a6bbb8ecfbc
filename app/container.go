package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/alxndrztsv/screen-recorder/config"
	"github.com/alxndrztsv/screen-recorder/domain/capture"
	"github.com/alxndrztsv/screen-recorder/domain/hotkey"
	"github.com/alxndrztsv/screen-recorder/domain/overlay"
	"github.com/alxndrztsv/screen-recorder/domain/pointer"
	"github.com/alxndrztsv/screen-recorder/domain/record"
	"github.com/alxndrztsv/screen-recorder/encode"
	"github.com/alxndrztsv/screen-recorder/ui/model"
	"github.com/alxndrztsv/screen-recorder/ui/presenter"
	"github.com/alxndrztsv/screen-recorder/ui/view"
)

// previewDivisor scales the recorded region down to the preview geometry.
const previewDivisor = 4

// AppContainer assembles the domain services, models, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Region   capture.Region
	Source   capture.Grabber
	Sprite   *overlay.Sprite // nil when recording without an overlay
	Sink     *encode.FFmpeg
	Signal   *record.StopSignal
	Recorder *record.Recorder
	Hotkey   *hotkey.Listener

	Session  *model.SessionModel
	Preview  *model.PreviewModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	Control *presenter.ControlPresenter
	Loop    *presenter.Loop // wired by the app once the window is built
}

// BuildContainer constructs all components up to, but not including, the
// window. Every error here is a setup failure; nothing has been captured or
// written yet. cursorExplicit marks that the sprite path came from the user
// rather than the default, which turns a missing file into an error instead
// of a sprite-less recording.
func BuildContainer(cfg *config.Config, cursorExplicit bool, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}

	regions, err := capture.Displays()
	if err != nil {
		return nil, err
	}
	c.Region, err = capture.SelectRegion(regions, cfg.Monitor)
	if err != nil {
		return nil, err
	}
	c.Source = capture.NewGrabber(c.Region)

	if !cfg.NoCursor {
		sprite, err := overlay.Load(cfg.CursorPath, cfg.CursorSize)
		switch {
		case err == nil:
			c.Sprite = sprite
		case cursorExplicit || !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("cursor sprite: %w", err)
		default:
			logger.Warn("cursor sprite not found, recording without overlay", "path", cfg.CursorPath)
		}
	}

	bounds := c.Region.Bounds
	c.Sink, err = encode.NewFFmpeg(encode.Options{
		FFmpegPath: cfg.FFmpegPath,
		OutputPath: cfg.OutputPath,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		FPS:        cfg.FPS,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	c.Signal = record.NewStopSignal()
	c.Session = model.NewSessionModel()
	c.Preview = model.NewPreviewModel(bounds.Dx()/previewDivisor, bounds.Dy()/previewDivisor)

	c.Recorder, err = record.NewRecorder(record.Options{
		Source:  c.Source,
		Sink:    c.Sink,
		Probe:   pointer.System(),
		Sprite:  c.Sprite,
		Preview: c.Preview,
		Signal:  c.Signal,
		Logger:  logger,
		FPS:     cfg.FPS,
	})
	if err != nil {
		_ = c.Sink.Close()
		return nil, err
	}

	c.Hotkey = hotkey.NewListener(hotkey.DefaultKey, logger)
	c.RootView = view.NewRootView()
	c.UI = c.RootView
	c.Control = presenter.NewControlPresenter(c.Signal, logger)
	return c, nil
}
