package pointer

import "github.com/go-vgo/robotgo"

// Probe reports the current global pointer position in screen coordinates.
// Sampled once per recording cycle; the result is transient.
type Probe interface {
	Position() (x, y int)
}

type systemProbe struct{}

// System returns a Probe backed by the OS cursor position.
func System() Probe { return systemProbe{} }

func (systemProbe) Position() (int, int) { return robotgo.Location() }

// Func adapts a plain function to the Probe interface.
type Func func() (int, int)

func (f Func) Position() (int, int) { return f() }
