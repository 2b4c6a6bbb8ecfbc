package assets

import "testing"

func TestPlaceholderDecodes(t *testing.T) {
	img, err := PlaceholderImage()
	if err != nil {
		t.Fatalf("decode embedded placeholder: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 180 {
		t.Fatalf("placeholder bounds = %dx%d, want 320x180", b.Dx(), b.Dy())
	}
}
