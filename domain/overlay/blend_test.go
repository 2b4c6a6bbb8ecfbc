package overlay

import (
	"bytes"
	"image"
	"testing"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

func solidFrame(w, h int, r, g, b uint8) *capture.Frame {
	f := capture.NewFrame(image.Rect(0, 0, w, h))
	for i := 0; i < len(f.Pix); i += 3 {
		f.Pix[i] = r
		f.Pix[i+1] = g
		f.Pix[i+2] = b
	}
	return f
}

func solidSprite(size int, r, g, b, a uint8) *Sprite {
	s := &Sprite{pix: make([]uint8, size*size*4), size: size}
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i] = r
		s.pix[i+1] = g
		s.pix[i+2] = b
		s.pix[i+3] = a
	}
	return s
}

// columnSprite encodes each pixel's sprite column in its red channel so
// tests can verify which part of the sprite landed on the frame.
func columnSprite(size int) *Sprite {
	s := &Sprite{pix: make([]uint8, size*size*4), size: size}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			s.pix[i] = uint8(x)
			s.pix[i+3] = 255
		}
	}
	return s
}

func framePixel(f *capture.Frame, x, y int) [3]uint8 {
	i := f.PixOffset(x, y)
	return [3]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

func TestBlend_InsideMatchesAlphaFormula(t *testing.T) {
	f := solidFrame(20, 20, 100, 150, 200)
	s := solidSprite(4, 250, 10, 60, 128)
	Blend(f, s, 5, 7)

	a := 128.0 / 255.0
	want := [3]uint8{
		uint8((1-a)*100 + a*250),
		uint8((1-a)*150 + a*10),
		uint8((1-a)*200 + a*60),
	}
	for y := 7; y < 11; y++ {
		for x := 5; x < 9; x++ {
			if got := framePixel(f, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	// One pixel outside the sprite footprint stays background.
	if got := framePixel(f, 4, 7); got != [3]uint8{100, 150, 200} {
		t.Fatalf("pixel left of sprite changed: %v", got)
	}
}

func TestBlend_FullyOutsideIsNoOp(t *testing.T) {
	const size = 8
	s := solidSprite(size, 255, 255, 255, 255)
	positions := [][2]int{
		{-size, 5}, {10, -size}, {16, 3}, {2, 16},
		{-1000, -1000}, {1000, 1000}, {-size - 1, 0}, {0, 17},
	}
	for _, pos := range positions {
		f := solidFrame(16, 16, 1, 2, 3)
		before := append([]uint8(nil), f.Pix...)
		Blend(f, s, pos[0], pos[1])
		if !bytes.Equal(before, f.Pix) {
			t.Fatalf("position %v: frame modified by off-frame blend", pos)
		}
	}
}

func TestBlend_StraddleLeftBoundary(t *testing.T) {
	// x = -5 with a 32px sprite on a 100px frame: columns 0..26 take sprite
	// columns 5..31, everything else is untouched.
	f := solidFrame(100, 100, 0, 0, 0)
	s := columnSprite(32)
	Blend(f, s, -5, 10)

	for y := 10; y < 42; y++ {
		for x := 0; x < 27; x++ {
			got := framePixel(f, x, y)
			if got[0] != uint8(x+5) {
				t.Fatalf("pixel (%d,%d) red = %d, want sprite column %d", x, y, got[0], x+5)
			}
		}
		if got := framePixel(f, 27, y); got != [3]uint8{} {
			t.Fatalf("pixel (27,%d) beyond sprite width changed: %v", y, got)
		}
	}
	if got := framePixel(f, 0, 9); got != [3]uint8{} {
		t.Fatalf("row above sprite changed: %v", got)
	}
	if got := framePixel(f, 0, 42); got != [3]uint8{} {
		t.Fatalf("row below sprite changed: %v", got)
	}
}

func TestBlend_TransparentSpriteIsIdentity(t *testing.T) {
	s := solidSprite(16, 255, 128, 64, 0)
	for _, pos := range [][2]int{{0, 0}, {10, 10}, {-8, -8}, {95, 95}} {
		f := solidFrame(100, 100, 33, 66, 99)
		before := append([]uint8(nil), f.Pix...)
		Blend(f, s, pos[0], pos[1])
		if !bytes.Equal(before, f.Pix) {
			t.Fatalf("position %v: transparent sprite changed the frame", pos)
		}
	}
}

func TestBlend_OpaqueReplacesPixels(t *testing.T) {
	f := solidFrame(50, 50, 9, 9, 9)
	s := solidSprite(10, 77, 88, 99, 255)
	Blend(f, s, 20, 20)
	for y := 20; y < 30; y++ {
		for x := 20; x < 30; x++ {
			if got := framePixel(f, x, y); got != [3]uint8{77, 88, 99} {
				t.Fatalf("pixel (%d,%d) = %v, want exact sprite color", x, y, got)
			}
		}
	}
}

func TestBlend_RedSpriteAtBottomRightCorner(t *testing.T) {
	// 100×100 frame, fully opaque red 32×32 sprite at (90,90): only the
	// 10×10 corner block turns red.
	f := solidFrame(100, 100, 0, 0, 0)
	s := solidSprite(32, 255, 0, 0, 255)
	Blend(f, s, 90, 90)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			got := framePixel(f, x, y)
			if x >= 90 && y >= 90 {
				if got != [3]uint8{255, 0, 0} {
					t.Fatalf("corner pixel (%d,%d) = %v, want red", x, y, got)
				}
			} else if got != [3]uint8{} {
				t.Fatalf("pixel (%d,%d) outside corner changed: %v", x, y, got)
			}
		}
	}
}

func TestBlend_NegativeXUsesRightPartOfSprite(t *testing.T) {
	// Position (-20, 50) with a 32px sprite: frame columns 0..11 and rows
	// 50..81 take sprite columns 20..31.
	f := solidFrame(100, 100, 0, 0, 0)
	s := columnSprite(32)
	Blend(f, s, -20, 50)

	for y := 50; y < 82; y++ {
		for x := 0; x < 12; x++ {
			got := framePixel(f, x, y)
			if got[0] != uint8(x+20) {
				t.Fatalf("pixel (%d,%d) red = %d, want sprite column %d", x, y, got[0], x+20)
			}
		}
		if got := framePixel(f, 12, y); got != [3]uint8{} {
			t.Fatalf("pixel (12,%d) changed: %v", y, got)
		}
	}
	if got := framePixel(f, 0, 49); got != [3]uint8{} {
		t.Fatalf("row 49 changed: %v", got)
	}
	if got := framePixel(f, 0, 82); got != [3]uint8{} {
		t.Fatalf("row 82 changed: %v", got)
	}
}

func TestBlend_SpriteLargerThanFrame(t *testing.T) {
	f := solidFrame(16, 16, 0, 0, 0)
	s := solidSprite(64, 5, 6, 7, 255)
	Blend(f, s, -10, -10)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := framePixel(f, x, y); got != [3]uint8{5, 6, 7} {
				t.Fatalf("pixel (%d,%d) = %v, want sprite interior", x, y, got)
			}
		}
	}
}

func TestBlend_NilInputsDoNotPanic(t *testing.T) {
	Blend(nil, solidSprite(4, 0, 0, 0, 255), 0, 0)
	Blend(solidFrame(4, 4, 0, 0, 0), nil, 0, 0)
	empty := capture.NewFrame(image.Rectangle{})
	Blend(empty, solidSprite(4, 0, 0, 0, 255), 0, 0)
}
