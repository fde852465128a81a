// Package layout implements an in-memory tiled workspace: a split tree of
// panes with integer row/column geometry. It is the Host Layout Service used
// by the demo window manager and the simulator.
package layout

// SplitType is the orientation of an internal node.
type SplitType int

const (
	// SplitNone marks a leaf.
	SplitNone SplitType = iota
	// SplitColumns places children side by side.
	SplitColumns
	// SplitRows stacks children top to bottom.
	SplitRows
)

func (s SplitType) String() string {
	switch s {
	case SplitColumns:
		return "columns"
	case SplitRows:
		return "rows"
	default:
		return "none"
	}
}

// Rect is a pane's position and size in cells.
type Rect struct {
	X, Y int
	W, H int
}

// Node is a split tree node. Leaves hold a Pane; internal nodes hold
// children and their sizes along the split axis, which always sum to the
// node's extent on that axis.
type Node struct {
	Split    SplitType
	Children []*Node
	Sizes    []int
	Pane     *Pane

	parent *Node
}

func newLeaf(p *Pane) *Node {
	n := &Node{Pane: p}
	p.node = n
	return n
}

// IsLeaf reports whether n holds a pane.
func (n *Node) IsLeaf() bool {
	return n.Pane != nil
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// leaves appends the panes under n in display order.
func (n *Node) leaves(out []*Pane) []*Pane {
	if n.IsLeaf() {
		return append(out, n.Pane)
	}
	for _, c := range n.Children {
		out = c.leaves(out)
	}
	return out
}

func (n *Node) firstLeaf() *Pane {
	for !n.IsLeaf() {
		n = n.Children[0]
	}
	return n.Pane
}

// place assigns rectangles to every pane under n.
func (n *Node) place(r Rect) {
	if n.IsLeaf() {
		n.Pane.rect = r
		return
	}
	offset := 0
	for i, c := range n.Children {
		switch n.Split {
		case SplitColumns:
			c.place(Rect{X: r.X + offset, Y: r.Y, W: n.Sizes[i], H: r.H})
		case SplitRows:
			c.place(Rect{X: r.X, Y: r.Y + offset, W: r.W, H: n.Sizes[i]})
		}
		offset += n.Sizes[i]
	}
}

// rescale changes n's extent along axis to size, distributing the change
// over children in proportion to their current sizes.
func (n *Node) rescale(axis SplitType, size int) {
	if n.IsLeaf() {
		return
	}
	if n.Split != axis {
		for _, c := range n.Children {
			c.rescale(axis, size)
		}
		return
	}

	old := 0
	for _, s := range n.Sizes {
		old += s
	}
	if old == size {
		return
	}

	// Children keep at least one cell while the extent allows it; below
	// that the smallest collapse to zero. Any excess from the floor comes
	// back out of the earliest children with room to spare.
	floor := 0
	if size >= len(n.Sizes) {
		floor = 1
	}
	assigned := 0
	for i := range n.Sizes {
		if old > 0 {
			n.Sizes[i] = max(floor, n.Sizes[i]*size/old)
		} else {
			n.Sizes[i] = max(floor, size/len(n.Sizes))
		}
		assigned += n.Sizes[i]
	}
	for i := 0; assigned > size && i < len(n.Sizes); i++ {
		take := min(assigned-size, n.Sizes[i]-floor)
		n.Sizes[i] -= take
		assigned -= take
	}
	n.Sizes[len(n.Sizes)-1] += size - assigned
	for i, c := range n.Children {
		c.rescale(axis, n.Sizes[i])
	}
}
