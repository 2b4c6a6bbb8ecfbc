package presenter

import (
	"log/slog"
)

// StopTrigger raises the shared stop flag with a reason.
type StopTrigger interface {
	Trigger(reason string)
}

// ControlPresenter funnels the window's stop actions into the stop signal.
// Every entry point is idempotent; the signal keeps only the first reason.
type ControlPresenter struct {
	signal StopTrigger
	logger *slog.Logger
}

func NewControlPresenter(signal StopTrigger, logger *slog.Logger) *ControlPresenter {
	return &ControlPresenter{signal: signal, logger: logger}
}

// StopClicked handles the stop button.
func (c *ControlPresenter) StopClicked() { c.request("stop button") }

// QuitKey handles the 'q' key bind.
func (c *ControlPresenter) QuitKey() { c.request("q pressed") }

// WindowClosed handles the window manager close protocol.
func (c *ControlPresenter) WindowClosed() { c.request("window closed") }

func (c *ControlPresenter) request(reason string) {
	if c == nil || c.signal == nil {
		return
	}
	if c.logger != nil {
		c.logger.Debug("stop control activated", "reason", reason)
	}
	c.signal.Trigger(reason)
}
