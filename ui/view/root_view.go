package view

import (
	"image"
	"time"

	"github.com/alxndrztsv/screen-recorder/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the recorder window layout and wires UI callbacks.
// It owns the subviews but exposes minimal exported fields for presenters.
type RootView struct {
	// Subviews
	Session SessionStats
	Preview PreviewView

	// Widgets
	StateLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetElapsed(d time.Duration)
	SetCounters(frames uint64, fps float64)
	ShowPreview(img image.Image)
}

func NewRootView() *RootView {
	return &RootView{}
}

// Build constructs the layout. onStop fires on the stop button, onQuitKey on
// a 'q' keypress anywhere in the window.
func (rv *RootView) Build(onStop, onQuitKey func()) {
	if rv == nil {
		return
	}
	// Row 0: state label, session stats, stop button
	rv.StateLabel = Label(Txt("State: idle"), Borderwidth(1), Relief("ridge"),
		Background(theme.ColorAccent), Foreground("white"))
	Grid(rv.StateLabel, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	rv.Session = NewSessionStats(0, 1)

	stopBtn := Button(Txt("Stop (F5)"), Command(onStop),
		Background(theme.ColorDanger), Foreground("white"))
	Grid(stopBtn, Row(0), Column(3), Sticky("e"), Padx("0.3m"), Pady("0.3m"))

	// Row 1: live preview
	rv.Preview = NewPreviewView(1)

	Bind(App, "<KeyPress-q>", Command(onQuitKey))
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetElapsed proxies to the session stats view.
func (rv *RootView) SetElapsed(d time.Duration) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetElapsed(d)
	}
}

// SetCounters proxies to the session stats view.
func (rv *RootView) SetCounters(frames uint64, fps float64) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetCounters(frames, fps)
	}
}

// ShowPreview proxies to the underlying preview view.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowPreview(img)
	}
}

// PreviewReset clears the preview back to the placeholder.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
