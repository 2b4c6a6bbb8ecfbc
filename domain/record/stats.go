package record

import "time"

// Stats summarises recording loop behaviour for instrumentation and the
// status display.
type Stats struct {
	Frames        uint64
	CaptureErrors uint64
	OverlaySkips  uint64
	PreviewDrops  uint64
	AvgCycle      time.Duration
	AvgGrab       time.Duration
	StartedAt     time.Time
	Elapsed       time.Duration
	EffectiveFPS  float64
}
