package capture

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// Grabber captures the pixels of a fixed screen region as RGB frames.
type Grabber interface {
	Grab() (*Frame, error)
	Region() Region
}

type displayGrabber struct {
	region Region
}

// NewGrabber returns a Grabber bound to the given region. Frames come from
// the pool; callers hand them back with RecycleFrame when done.
func NewGrabber(r Region) Grabber {
	return &displayGrabber{region: r}
}

func (g *displayGrabber) Region() Region { return g.region }

func (g *displayGrabber) Grab() (*Frame, error) {
	img, err := screenshot.CaptureRect(g.region.Bounds)
	if err != nil {
		return nil, fmt.Errorf("capture %s: %w", g.region, err)
	}
	f := acquireFrame(g.region.Bounds)
	f.FromRGBA(img)
	return f, nil
}
