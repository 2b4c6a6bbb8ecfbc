package overlay

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Sprite is the immutable cursor glyph blended onto captured frames.
// Pixels are straight (non-premultiplied) RGBA, exactly size×size; the
// fourth channel is the per-pixel opacity used by Blend. A Sprite is
// shared read-only across all recording cycles.
type Sprite struct {
	pix  []uint8 // 4 bytes per pixel: R, G, B, A
	size int
}

// Size returns the sprite edge length in pixels.
func (s *Sprite) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Load reads an image file and scales it to exactly size×size. The scale is
// a plain stretch; source aspect ratio is not preserved. Missing files keep
// their fs.ErrNotExist identity so callers can distinguish "default cursor
// absent" from a hard failure.
func Load(path string, size int) (*Sprite, error) {
	if size < 1 {
		return nil, fmt.Errorf("cursor size must be positive, got %d", size)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load cursor %q: %w", path, err)
	}
	return FromImage(img, size), nil
}

// FromImage builds a sprite from an in-memory image, stretching to size×size.
func FromImage(img image.Image, size int) *Sprite {
	if img == nil || size < 1 {
		return nil
	}
	scaled := imaging.Resize(img, size, size, imaging.Lanczos)
	s := &Sprite{pix: make([]uint8, size*size*4), size: size}
	for y := 0; y < size; y++ {
		si := y * scaled.Stride
		di := y * size * 4
		copy(s.pix[di:di+size*4], scaled.Pix[si:si+size*4])
	}
	return s
}
