package model

import (
	"time"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
	"github.com/alxndrztsv/screen-recorder/ui/images"
)

// PreviewModel hands scaled frame snapshots from the recording goroutine to
// the UI tick over a single-slot channel. Offers while the slot is still
// full are rejected before any scaling work happens, so a slow UI never
// drags the recording loop down.
type PreviewModel struct {
	maxW, maxH int
	slot       chan capture.FrameSnapshot
}

// NewPreviewModel returns a model producing snapshots that fit within
// maxW x maxH.
func NewPreviewModel(maxW, maxH int) *PreviewModel {
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	return &PreviewModel{maxW: maxW, maxH: maxH, slot: make(chan capture.FrameSnapshot, 1)}
}

// Offer copies and scales the frame into the slot when it is free. It
// returns false when a frame had to be dropped to keep up. Called from the
// recording goroutine; the snapshot never aliases the frame's pixels.
func (m *PreviewModel) Offer(f *capture.Frame, seq uint64) bool {
	if m == nil || f == nil {
		return false
	}
	if len(m.slot) != 0 {
		return false
	}
	snap := capture.FrameSnapshot{
		Image:      images.ScaleFrame(f, m.maxW, m.maxH),
		CapturedAt: time.Now(),
		Sequence:   seq,
	}
	if snap.Image == nil {
		return false
	}
	select {
	case m.slot <- snap:
		return true
	default:
		return false
	}
}

// TakeLatest drains the slot. The second return is false when no fresh
// snapshot arrived since the last call. Called from the UI tick.
func (m *PreviewModel) TakeLatest() (capture.FrameSnapshot, bool) {
	if m == nil {
		return capture.FrameSnapshot{}, false
	}
	select {
	case snap := <-m.slot:
		return snap, true
	default:
		return capture.FrameSnapshot{}, false
	}
}
