// Package resize applies golden-ratio deltas to the active region, one axis
// at a time, through the host's constrained-resize primitive.
package resize

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/geometry"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
)

// Result describes one resize pass.
type Result struct {
	Rows        int  // requested vertical delta
	Cols        int  // requested horizontal delta
	RowsApplied bool // vertical delta was feasible and applied
	ColsApplied bool // horizontal delta was feasible and applied
}

// Changed reports whether either axis was resized.
func (r Result) Changed() bool {
	return r.RowsApplied || r.ColsApplied
}

// Snapshot converts host regions into geometry boxes.
func Snapshot(regions []host.Region) []geometry.Box {
	boxes := make([]geometry.Box, len(regions))
	for i, r := range regions {
		boxes[i] = box(r)
	}
	return boxes
}

func box(r host.Region) geometry.Box {
	return geometry.Box{
		Width:      r.Width(),
		Height:     r.Height(),
		FullWidth:  r.FullWidth(),
		FullHeight: r.FullHeight(),
	}
}

// Deltas returns the row and column deltas that move region toward target,
// measured from the sibling baselines rather than the region's own size.
func Deltas(regions []host.Region, target geometry.Dimensions, region host.Region) (rows, cols int) {
	boxes := Snapshot(regions)
	active := box(region)
	rows = target.Height - geometry.AverageHeight(boxes, active)
	cols = target.Width - geometry.AverageWidth(boxes, active)
	return rows, cols
}

// Active resizes region toward target. Each axis is checked and applied on
// its own; an infeasible axis is skipped without affecting the other.
// Zero deltas are never sent to the host.
func Active(svc host.Service, target geometry.Dimensions, region host.Region) Result {
	var res Result
	res.Rows, res.Cols = Deltas(svc.Regions(), target, region)

	res.RowsApplied = apply(svc, region, host.Vertical, res.Rows)
	res.ColsApplied = apply(svc, region, host.Horizontal, res.Cols)
	return res
}

func apply(svc host.Service, region host.Region, axis host.Axis, delta int) bool {
	if delta == 0 || !svc.Resizable(region, axis, delta) {
		return false
	}
	svc.Resize(region, axis, delta)
	return true
}
