package capture

import (
	"image"
	"sync"
)

// Lightweight reusable frame pool to reduce long-lived heap churn caused by
// repeated allocation of large RGB backing slices. This does NOT eliminate
// the allocations performed by the underlying screenshot library (it still
// returns a freshly allocated *image.RGBA per grab); we copy those pixels
// into a pooled 3-byte-per-pixel buffer during the RGBA→RGB conversion that
// the encoder needs anyway. At 30 fps on a large display this avoids
// retaining a distinct multi-megabyte slice per cycle.
//
// Usage: acquireFrame(rect) returns a *Frame whose Pix capacity is at least
// rect area * 3. After the sink write and preview copy the recording loop
// calls RecycleFrame(frame) to allow reuse. If a frame is never recycled the
// behavior degrades gracefully to plain allocation.

var framePool sync.Pool // stores *Frame

// acquireFrame returns a reusable frame sized to rect. The returned Pix
// length exactly matches rect area * 3, and Stride is width*3.
func acquireFrame(rect image.Rectangle) *Frame {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &Frame{Rect: rect}
	}
	needed := w * h * 3
	var f *Frame
	if v := framePool.Get(); v != nil {
		f = v.(*Frame)
	}
	if f == nil || cap(f.Pix) < needed {
		f = &Frame{Pix: make([]uint8, needed), Stride: w * 3, Rect: image.Rect(0, 0, w, h)}
	} else {
		f.Stride = w * 3
		f.Rect = image.Rect(0, 0, w, h)
		f.Pix = f.Pix[:needed]
	}
	return f
}

// RecycleFrame returns the frame to the pool for potential reuse. The frame
// must no longer be accessed by the caller after invoking RecycleFrame.
func RecycleFrame(f *Frame) {
	if f == nil || f.Pix == nil {
		return
	}
	framePool.Put(f)
}
