// Package geometry computes golden-ratio targets and sibling baselines from a
// snapshot of region sizes. Everything here is pure.
package geometry

import "math"

// Phi is the fixed golden-ratio approximation used for targets.
const Phi = 1.618

// Box is the geometry of a single region at snapshot time.
type Box struct {
	Width      int
	Height     int
	FullWidth  bool
	FullHeight bool
}

// Dimensions is a target size in rows and columns.
type Dimensions struct {
	Height int
	Width  int
}

// Target returns floor(height/Phi*factor) by floor(width/Phi*factor).
// A factor of 1 gives the plain golden-ratio target. The result is not
// clamped to the display.
func Target(height, width int, factor float64) Dimensions {
	return Dimensions{
		Height: int(math.Floor(float64(height) / Phi * factor)),
		Width:  int(math.Floor(float64(width) / Phi * factor)),
	}
}

// AverageWidth returns the floored mean width of the boxes that are not
// full-width, never more than active.Width. With no such box the active
// width is returned.
func AverageWidth(boxes []Box, active Box) int {
	sum, n := 0, 0
	for _, b := range boxes {
		if b.FullWidth {
			continue
		}
		sum += b.Width
		n++
	}
	if n == 0 {
		return active.Width
	}
	return min(sum/n, active.Width)
}

// AverageHeight returns the floored mean height of the boxes that are
// full-width but not full-height (regions stacked in one column), never more
// than active.Height. With no such box the active height is returned.
func AverageHeight(boxes []Box, active Box) int {
	sum, n := 0, 0
	for _, b := range boxes {
		if !b.FullWidth || b.FullHeight {
			continue
		}
		sum += b.Height
		n++
	}
	if n == 0 {
		return active.Height
	}
	return min(sum/n, active.Height)
}
