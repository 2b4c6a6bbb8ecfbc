package overlay

import (
	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

// Blend alpha-composites the sprite onto the frame with its top-left corner
// at frame-local (x, y), mutating the frame in place. Any integer position
// is legal: the overlap is clipped to the frame and a zero-area overlap is a
// strict no-op, so a pointer parked on a non-recorded monitor simply leaves
// the frame untouched. The frame must not be read concurrently while Blend
// runs; the recording loop is the single writer for the whole cycle.
func Blend(f *capture.Frame, s *Sprite, x, y int) {
	if f == nil || s == nil || s.size == 0 || len(f.Pix) == 0 {
		return
	}
	w, h := f.Width(), f.Height()

	// Destination rectangle on the frame, clipped to its bounds.
	x1, y1 := x, y
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	x2, y2 := x+s.size, y+s.size
	if x2 > w {
		x2 = w
	}
	if y2 > h {
		y2 = h
	}
	if x2-x1 <= 0 || y2-y1 <= 0 {
		return
	}

	// Matching source offset inside the sprite: whatever was clipped off the
	// low side of the destination is skipped on the source.
	sx0 := x1 - x
	sy0 := y1 - y

	for row := 0; row < y2-y1; row++ {
		di := f.PixOffset(x1, y1+row)
		si := ((sy0+row)*s.size + sx0) * 4
		for col := x1; col < x2; col++ {
			a := float64(s.pix[si+3]) / 255.0
			f.Pix[di] = uint8((1-a)*float64(f.Pix[di]) + a*float64(s.pix[si]))
			f.Pix[di+1] = uint8((1-a)*float64(f.Pix[di+1]) + a*float64(s.pix[si+1]))
			f.Pix[di+2] = uint8((1-a)*float64(f.Pix[di+2]) + a*float64(s.pix[si+2]))
			di += 3
			si += 4
		}
	}
}
