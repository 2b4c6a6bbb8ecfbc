package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats updates the elapsed-time and throughput labels.
type SessionStats interface {
	SetElapsed(d time.Duration)
	SetCounters(frames uint64, fps float64)
}

type sessionStats struct {
	elapsedLbl *LabelWidget
	framesLbl  *LabelWidget
}

// NewSessionStats creates the elapsed and frame-counter labels in a grid
// layout, at (row, startCol) and (row, startCol+1).
func NewSessionStats(row, startCol int) SessionStats {
	s := &sessionStats{elapsedLbl: Label(Width(14)), framesLbl: Label(Width(22))}
	Grid(s.elapsedLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.framesLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.elapsedLbl.Configure(Txt("Elapsed: 00:00"))
	s.framesLbl.Configure(Txt("Frames: 0"))
	return s
}

// SetElapsed updates the elapsed duration display.
func (s *sessionStats) SetElapsed(d time.Duration) {
	if s == nil || s.elapsedLbl == nil {
		return
	}
	seconds := int(d.Seconds())
	min, sec := seconds/60, seconds%60
	s.elapsedLbl.Configure(Txt(fmt.Sprintf("Elapsed: %02d:%02d", min, sec)))
}

// SetCounters updates the frame counter and measured rate display.
func (s *sessionStats) SetCounters(frames uint64, fps float64) {
	if s == nil || s.framesLbl == nil {
		return
	}
	s.framesLbl.Configure(Txt(fmt.Sprintf("Frames: %d (%.1f fps)", frames, fps)))
}
