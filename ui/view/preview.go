package view

import (
	"image"

	"github.com/alxndrztsv/screen-recorder/assets"
	"github.com/alxndrztsv/screen-recorder/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PreviewView abstracts the live frame preview. It owns one LabelWidget and
// provides methods to update or reset it.
type PreviewView interface {
	ShowPreview(img image.Image)
	Reset()
}

type previewView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
}

// Internal state tracks the current photo so we can dispose the old image
// before replacing it, preventing accumulation of off-screen image data.

// NewPreviewView creates the preview label showing the embedded placeholder,
// grids it across the full width of the given row and returns the view.
func NewPreviewView(row int) PreviewView {
	photo := NewPhoto(Data(assets.PlaceholderPNG))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &previewView{label: label, prevPhoto: photo}
}

// ShowPreview swaps the label's photo for the given image. The image arrives
// pre-scaled from the snapshot model; only PNG encoding happens here.
func (v *previewView) ShowPreview(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if len(pngBytes) == 0 {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

// Reset restores the placeholder.
func (v *previewView) Reset() {
	if v.label == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(assets.PlaceholderPNG))
	v.label.Configure(Image(v.prevPhoto))
}
