package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Region is a rectangular subset of the virtual screen being recorded.
// Index is the 1-based monitor number shown to the user; Bounds carries the
// screen-space origin and dimensions. Immutable once selected.
type Region struct {
	Index  int
	Bounds image.Rectangle
}

var (
	// ErrNoDisplays indicates no active display could be enumerated.
	ErrNoDisplays = errors.New("capture: no active displays")
	// ErrAllMonitors rejects index 0, which the OS reserves for the
	// union of all monitors and this tool does not record.
	ErrAllMonitors = errors.New("capture: monitor index 0 (all monitors) is not supported")
	// ErrMonitorRange indicates a monitor index outside the enumerated set.
	ErrMonitorRange = errors.New("capture: monitor index out of range")
	// ErrEmptyRegion indicates a display reported a zero-area bounds.
	ErrEmptyRegion = errors.New("capture: display has an empty bounds rectangle")
)

func (r Region) String() string {
	return fmt.Sprintf("monitor %d (%dx%d at %d,%d)", r.Index, r.Bounds.Dx(), r.Bounds.Dy(), r.Bounds.Min.X, r.Bounds.Min.Y)
}

// Displays enumerates the attached displays as 1-based regions.
func Displays() ([]Region, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, ErrNoDisplays
	}
	regions := make([]Region, 0, n)
	for i := 0; i < n; i++ {
		regions = append(regions, Region{Index: i + 1, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return regions, nil
}

// SelectRegion resolves a 1-based monitor index against the enumerated set.
// Index 0 is rejected; out-of-range indexes report the valid range.
func SelectRegion(regions []Region, index int) (Region, error) {
	if len(regions) == 0 {
		return Region{}, ErrNoDisplays
	}
	if index == 0 {
		return Region{}, ErrAllMonitors
	}
	if index < 1 || index > len(regions) {
		return Region{}, fmt.Errorf("%w: %d (valid range 1..%d)", ErrMonitorRange, index, len(regions))
	}
	r := regions[index-1]
	if r.Bounds.Dx() <= 0 || r.Bounds.Dy() <= 0 {
		return Region{}, fmt.Errorf("%w: monitor %d", ErrEmptyRegion, index)
	}
	return r, nil
}
