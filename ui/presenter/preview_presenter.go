package presenter

import (
	"image"

	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

// PreviewSource supplies the most recent frame snapshot, if any arrived.
type PreviewSource interface {
	TakeLatest() (capture.FrameSnapshot, bool)
}

// PreviewView renders preview images.
type PreviewView interface {
	ShowPreview(img image.Image)
}

// PreviewPresenter moves fresh snapshots from the model to the view.
type PreviewPresenter struct {
	src     PreviewSource
	view    PreviewView
	lastSeq uint64
}

func NewPreviewPresenter(src PreviewSource, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{src: src, view: view}
}

// Tick drains the snapshot slot and pushes the image to the view. Snapshots
// already shown (same sequence) are skipped.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	snap, ok := p.src.TakeLatest()
	if !ok || snap.Image == nil {
		return
	}
	if snap.Sequence != 0 && snap.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snap.Sequence
	p.view.ShowPreview(snap.Image)
}
