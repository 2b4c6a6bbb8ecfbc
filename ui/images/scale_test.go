package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

// quadFrame builds a 2w x 2h frame whose four quadrants carry distinct
// red-channel values: 10, 20, 30, 40 reading left-right, top-bottom.
func quadFrame(halfW, halfH int) *capture.Frame {
	f := capture.NewFrame(image.Rect(0, 0, 2*halfW, 2*halfH))
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			v := uint8(10)
			if x >= halfW {
				v += 10
			}
			if y >= halfH {
				v += 20
			}
			f.Pix[f.PixOffset(x, y)] = v
		}
	}
	return f
}

func TestScaleFrameDownscaleMapping(t *testing.T) {
	f := quadFrame(4, 4) // 8x8
	got := ScaleFrame(f, 2, 2)
	if got == nil {
		t.Fatal("nil result")
	}
	if got.Bounds().Dx() != 2 || got.Bounds().Dy() != 2 {
		t.Fatalf("scaled to %v, want 2x2", got.Bounds())
	}
	wants := [2][2]uint8{{10, 20}, {30, 40}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := got.RGBAAt(x, y)
			if c.R != wants[y][x] {
				t.Errorf("pixel (%d,%d) red = %d, want %d", x, y, c.R, wants[y][x])
			}
			if c.A != 0xFF {
				t.Errorf("pixel (%d,%d) alpha = %d, want opaque", x, y, c.A)
			}
		}
	}
}

func TestScaleFrameNoUpscale(t *testing.T) {
	f := capture.NewFrame(image.Rect(0, 0, 3, 2))
	f.Pix[f.PixOffset(2, 1)] = 99

	got := ScaleFrame(f, 100, 100)
	if got.Bounds().Dx() != 3 || got.Bounds().Dy() != 2 {
		t.Fatalf("small frame should convert 1:1, got %v", got.Bounds())
	}
	if got.RGBAAt(2, 1).R != 99 {
		t.Errorf("1:1 conversion lost pixel value, got %d", got.RGBAAt(2, 1).R)
	}
}

func TestScaleFramePreservesAspect(t *testing.T) {
	f := capture.NewFrame(image.Rect(0, 0, 200, 100))
	got := ScaleFrame(f, 50, 50)
	if got.Bounds().Dx() != 50 || got.Bounds().Dy() != 25 {
		t.Errorf("aspect not preserved: got %dx%d, want 50x25", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestScaleFrameChannelOrder(t *testing.T) {
	f := capture.NewFrame(image.Rect(0, 0, 1, 1))
	f.Pix[0], f.Pix[1], f.Pix[2] = 1, 2, 3

	got := ScaleFrame(f, 10, 10)
	c := got.RGBAAt(0, 0)
	if c.R != 1 || c.G != 2 || c.B != 3 {
		t.Errorf("channel order mangled: got (%d,%d,%d), want (1,2,3)", c.R, c.G, c.B)
	}
}

func TestScaleFrameNil(t *testing.T) {
	if got := ScaleFrame(nil, 10, 10); got != nil {
		t.Errorf("nil frame should return nil, got %v", got)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.Pix[0] = 200

	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatal("empty PNG bytes")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: %v vs %v", decoded.Bounds(), src.Bounds())
	}
}

func TestEncodePNGNil(t *testing.T) {
	if got := EncodePNG(nil); got != nil {
		t.Errorf("nil image should return nil, got %d bytes", len(got))
	}
}
