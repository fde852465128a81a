package layout

import (
	"math"

	"github.com/Gaurav-Gosain/goldenratio/internal/host"
)

// unbounded stands in for "can grow without limit".
const unbounded = math.MaxInt / 4

func splitFor(axis host.Axis) SplitType {
	if axis == host.Horizontal {
		return SplitColumns
	}
	return SplitRows
}

// shrinkCap is how many cells n can give up along s.
func (ws *Workspace) shrinkCap(n *Node, s SplitType, size int) int {
	if n.IsLeaf() {
		p := n.Pane
		if s == SplitColumns {
			if p.FixedWidth {
				return 0
			}
			return max(0, size-p.minWidth())
		}
		if p.FixedHeight {
			return 0
		}
		return max(0, size-p.minHeight())
	}

	if n.Split != s {
		c := unbounded
		for _, child := range n.Children {
			c = min(c, ws.shrinkCap(child, s, size))
		}
		return c
	}
	total := 0
	for i, child := range n.Children {
		total += ws.shrinkCap(child, s, n.Sizes[i])
	}
	return total
}

// growCap is how many cells n can take along s.
func growCap(n *Node, s SplitType) int {
	if n.IsLeaf() {
		if (s == SplitColumns && n.Pane.FixedWidth) || (s == SplitRows && n.Pane.FixedHeight) {
			return 0
		}
		return unbounded
	}

	if n.Split != s {
		c := unbounded
		for _, child := range n.Children {
			c = min(c, growCap(child, s))
		}
		return c
	}
	c := 0
	for _, child := range n.Children {
		c = min(unbounded, c+growCap(child, s))
	}
	return c
}

// distribute splits total over slots in proportion to weights, bounded by
// caps. Leftover cells go to slots in order. The caller guarantees total
// fits within the sum of caps.
func distribute(total int, weights, caps []int) []int {
	out := make([]int, len(caps))
	sumW := 0
	for i, w := range weights {
		if caps[i] > 0 {
			sumW += w
		}
	}

	given := 0
	if sumW > 0 {
		for i, w := range weights {
			if caps[i] == 0 {
				continue
			}
			out[i] = min(caps[i], total*w/sumW)
			given += out[i]
		}
	}
	for i := 0; given < total && i < len(caps); i++ {
		extra := min(caps[i]-out[i], total-given)
		out[i] += extra
		given += extra
	}
	return out
}

// applyDelta changes n's size along s by d. For nodes split along s the
// change is spread across children; other nodes pass it through.
func (ws *Workspace) applyDelta(n *Node, s SplitType, d int) {
	if n.IsLeaf() || d == 0 {
		return
	}
	if n.Split != s {
		for _, child := range n.Children {
			ws.applyDelta(child, s, d)
		}
		return
	}

	caps := make([]int, len(n.Children))
	for i, child := range n.Children {
		if d > 0 {
			caps[i] = growCap(child, s)
		} else {
			caps[i] = ws.shrinkCap(child, s, n.Sizes[i])
		}
	}
	share := distribute(abs(d), n.Sizes, caps)
	// Children that cannot absorb the change still have to sum to the new
	// extent; the last one takes what is left.
	given := 0
	for _, v := range share {
		given += v
	}
	share[len(share)-1] += abs(d) - given
	for i, child := range n.Children {
		delta := share[i]
		if d < 0 {
			delta = -delta
		}
		n.Sizes[i] += delta
		ws.applyDelta(child, s, delta)
	}
}

// resizeAnchor finds the nearest ancestor of p split along s and the index
// of the child subtree holding p.
func resizeAnchor(p *Pane, s SplitType) (*Node, int) {
	child := p.node
	for parent := child.parent; parent != nil; parent = parent.parent {
		if parent.Split == s && len(parent.Children) > 1 {
			return parent, parent.indexOf(child)
		}
		child = parent
	}
	return nil, -1
}

// siblingOrder lists sibling indexes nearest first, following ones before
// preceding ones at equal distance.
func siblingOrder(n, idx int) []int {
	order := make([]int, 0, n-1)
	for dist := 1; len(order) < n-1; dist++ {
		if idx+dist < n {
			order = append(order, idx+dist)
		}
		if idx-dist >= 0 {
			order = append(order, idx-dist)
		}
	}
	return order
}

// plan computes how much each sibling of p's anchor gives up (delta > 0) or
// takes (delta < 0). ok is false when the full delta cannot be satisfied.
func (ws *Workspace) plan(p *Pane, axis host.Axis, delta int) (anchor *Node, idx int, order, share []int, ok bool) {
	s := splitFor(axis)
	anchor, idx = resizeAnchor(p, s)
	if anchor == nil {
		return nil, -1, nil, nil, false
	}

	branch := anchor.Children[idx]
	if delta > 0 && growCap(branch, s) < delta {
		return nil, -1, nil, nil, false
	}
	if delta < 0 && ws.shrinkCap(branch, s, anchor.Sizes[idx]) < -delta {
		return nil, -1, nil, nil, false
	}

	order = siblingOrder(len(anchor.Children), idx)
	weights := make([]int, len(order))
	caps := make([]int, len(order))
	total := 0
	for i, j := range order {
		weights[i] = anchor.Sizes[j]
		if delta > 0 {
			caps[i] = ws.shrinkCap(anchor.Children[j], s, anchor.Sizes[j])
		} else {
			caps[i] = growCap(anchor.Children[j], s)
		}
		total = min(unbounded, total+caps[i])
	}
	if total < abs(delta) {
		return nil, -1, nil, nil, false
	}
	return anchor, idx, order, distribute(abs(delta), weights, caps), true
}

// Resizable implements host.Service.
func (ws *Workspace) Resizable(r host.Region, axis host.Axis, delta int) bool {
	if delta == 0 {
		return true
	}
	p := ws.pane(r)
	if p == nil {
		return false
	}
	_, _, _, _, ok := ws.plan(p, axis, delta)
	return ok
}

// Resize implements host.Service. Infeasible requests change nothing.
func (ws *Workspace) Resize(r host.Region, axis host.Axis, delta int) {
	if delta == 0 {
		return
	}
	p := ws.pane(r)
	if p == nil {
		return
	}
	anchor, idx, order, share, ok := ws.plan(p, axis, delta)
	if !ok {
		return
	}

	s := splitFor(axis)
	anchor.Sizes[idx] += delta
	ws.applyDelta(anchor.Children[idx], s, delta)
	for i, j := range order {
		d := share[i]
		if delta > 0 {
			d = -d
		}
		anchor.Sizes[j] += d
		ws.applyDelta(anchor.Children[j], s, d)
	}

	ws.relayout()
	ws.emitLayoutChange()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
