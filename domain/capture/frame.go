package capture

import "image"

// Frame is a packed 24-bit RGB pixel buffer with no alpha channel, the unit
// of work flowing from capture through overlay to the video sink. A frame is
// owned by exactly one goroutine per cycle; dimensions never change during a
// recording.
type Frame struct {
	// Pix holds three bytes per pixel in R, G, B order.
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewFrame allocates a frame covering rect.
func NewFrame(rect image.Rectangle) *Frame {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &Frame{Rect: rect}
	}
	return &Frame{Pix: make([]uint8, w*h*3), Stride: w * 3, Rect: rect}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.Rect.Dx() }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.Rect.Dy() }

// PixOffset returns the index of the first byte of the pixel at frame-local (x, y).
func (f *Frame) PixOffset(x, y int) int { return y*f.Stride + x*3 }

// FromRGBA fills the frame from an RGBA image, dropping the alpha channel.
// This is the single fixed color conversion in the pipeline; the frame is
// resized to match src when needed.
func (f *Frame) FromRGBA(src *image.RGBA) {
	if src == nil {
		return
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	needed := w * h * 3
	if cap(f.Pix) < needed {
		f.Pix = make([]uint8, needed)
	}
	f.Pix = f.Pix[:needed]
	f.Stride = w * 3
	f.Rect = image.Rect(0, 0, w, h)
	for y := 0; y < h; y++ {
		si := y * src.Stride
		di := y * f.Stride
		for x := 0; x < w; x++ {
			f.Pix[di] = src.Pix[si]
			f.Pix[di+1] = src.Pix[si+1]
			f.Pix[di+2] = src.Pix[si+2]
			si += 4
			di += 3
		}
	}
}

// RGBA expands the frame back into a fully opaque RGBA image, used for the
// preview path which feeds a PNG encoder.
func (f *Frame) RGBA() *image.RGBA {
	w, h := f.Width(), f.Height()
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := y * f.Stride
		di := y * out.Stride
		for x := 0; x < w; x++ {
			out.Pix[di] = f.Pix[si]
			out.Pix[di+1] = f.Pix[si+1]
			out.Pix[di+2] = f.Pix[si+2]
			out.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return out
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{Pix: make([]uint8, len(f.Pix)), Stride: f.Stride, Rect: f.Rect}
	copy(out.Pix, f.Pix)
	return out
}
