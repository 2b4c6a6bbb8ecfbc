package presenter

import (
	"time"

	"github.com/alxndrztsv/screen-recorder/domain/record"
	"github.com/alxndrztsv/screen-recorder/ui/model"
)

// RecorderStats narrows what the status row needs from the recorder.
type RecorderStats interface {
	State() record.State
	Stats() record.Stats
}

// SessionView displays the elapsed duration and throughput counters.
type SessionView interface {
	SetElapsed(d time.Duration)
	SetCounters(frames uint64, fps float64)
}

// SessionPresenter formats elapsed time and loop counters to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	rec  RecorderStats
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, rec RecorderStats, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, rec: rec, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.rec == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.rec.State() == record.StateRunning, now)
	p.view.SetElapsed(p.sess.Elapsed())
	st := p.rec.Stats()
	p.view.SetCounters(st.Frames, st.EffectiveFPS)
}
