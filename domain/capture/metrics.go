package capture

import (
	"image"
	"time"
)

// FrameSnapshot carries a preview copy of a composited frame plus metadata.
// Snapshots are published to the UI over a single-slot channel; the Image is
// an independent copy, never the loop's working frame.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}
