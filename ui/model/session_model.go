package model

import (
	"time"
)

// SessionModel tracks how long the recorder has been running. It is
// decoupled from the UI; presenters should poll Elapsed() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active  bool
	start   time.Time
	elapsed time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current recording state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(recording bool, now time.Time) {
	if m == nil {
		return
	}
	if recording {
		if !m.active { // transition off -> on
			m.active = true
			m.start = now
		}
		m.elapsed = now.Sub(m.start)
	} else if m.active { // transition on -> off
		m.elapsed = now.Sub(m.start)
		m.active = false
	}
}

// Elapsed returns the recording duration. After the recording stopped it
// keeps returning the final value.
func (m *SessionModel) Elapsed() time.Duration {
	if m == nil {
		return 0
	}
	return m.elapsed
}
