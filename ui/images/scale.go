package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleFrame converts a packed RGB frame into an opaque RGBA image scaled
// with nearest-neighbour so that it fits within maxW x maxH, preserving
// aspect ratio. Frames already inside the bounds convert 1:1; ScaleFrame
// never upscales.
func ScaleFrame(f *capture.Frame, maxW, maxH int) *image.RGBA {
	if f == nil {
		return nil
	}
	w, h := f.Width(), f.Height()
	if w < 1 || h < 1 {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := 1.0
	if w > maxW || h > maxH {
		ratioW := float64(maxW) / float64(w)
		ratioH := float64(maxH) / float64(h)
		ratio = ratioW
		if ratioH < ratio {
			ratio = ratioH
		}
	}
	newW := int(float64(w)*ratio + 0.5)
	newH := int(float64(h)*ratio + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	for y := 0; y < newH; y++ {
		sy := int(float64(y) * float64(h) / float64(newH))
		srow := f.Pix[sy*f.Stride:]
		drow := dst.Pix[y*dst.Stride:]
		for x := 0; x < newW; x++ {
			sx := int(float64(x)*float64(w)/float64(newW)) * 3
			di := x * 4
			drow[di] = srow[sx]
			drow[di+1] = srow[sx+1]
			drow[di+2] = srow[sx+2]
			drow[di+3] = 0xFF
		}
	}
	return dst
}
