package presenter

import (
	"time"

	"github.com/alxndrztsv/screen-recorder/domain/record"
)

// StateSource provides the recorder lifecycle methods the presenter requires.
type StateSource interface {
	State() record.State
}

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter polls the recorder state and updates the view on change.
type StatePresenter struct {
	rec    StateSource
	view   StateView
	latest record.State // last reflected state
	shown  bool
}

func NewStatePresenter(rec StateSource, view StateView) *StatePresenter {
	return &StatePresenter{rec: rec, view: view}
}

// Tick reads the current state and pushes it to the view when it differs
// from the last reflected one.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.rec == nil || p.view == nil {
		return
	}
	s := p.rec.State()
	if p.shown && s == p.latest {
		return
	}
	p.latest = s
	p.shown = true
	p.view.SetStateLabel("State: " + s.String())
}
