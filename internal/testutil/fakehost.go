// Package testutil provides a scriptable Host Layout Service for tests.
package testutil

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
)

// FakeRegion is a region whose geometry tests set directly.
type FakeRegion struct {
	Name    string
	Mode    string
	W, H    int
	FullW   bool
	FullH   bool
	HScroll int
	// Recentered counts Recenter calls against this region.
	Recentered int
}

func (r *FakeRegion) ID() string       { return r.Name }
func (r *FakeRegion) Width() int       { return r.W }
func (r *FakeRegion) Height() int      { return r.H }
func (r *FakeRegion) FullWidth() bool  { return r.FullW }
func (r *FakeRegion) FullHeight() bool { return r.FullH }

// ResizeCall records one applied resize.
type ResizeCall struct {
	Region string
	Axis   host.Axis
	Delta  int
}

// FakeHost implements host.Service over a fixed list of FakeRegions.
// Resizes change the target region only; siblings are not rebalanced.
type FakeHost struct {
	List       []*FakeRegion
	Active     int
	Minibuffer bool
	Rows, Cols int

	// Feasible decides resizability. Nil means every request is feasible.
	Feasible func(r host.Region, axis host.Axis, delta int) bool

	Calls []ResizeCall

	layoutSubs map[int]func()
	cmdSubs    map[int]func(host.Command)
	nextSub    int
}

// NewFakeHost creates a host with the given display size and regions. The
// first region is active.
func NewFakeHost(rows, cols int, regions ...*FakeRegion) *FakeHost {
	return &FakeHost{
		List:       regions,
		Rows:       rows,
		Cols:       cols,
		layoutSubs: make(map[int]func()),
		cmdSubs:    make(map[int]func(host.Command)),
	}
}

func (h *FakeHost) Regions() []host.Region {
	out := make([]host.Region, len(h.List))
	for i, r := range h.List {
		out[i] = r
	}
	return out
}

func (h *FakeHost) ActiveRegion() host.Region {
	return h.List[h.Active]
}

func (h *FakeHost) ActiveFake() *FakeRegion {
	return h.List[h.Active]
}

func (h *FakeHost) MinibufferFocused() bool { return h.Minibuffer }

func (h *FakeHost) Display() (int, int) { return h.Rows, h.Cols }

func (h *FakeHost) Resizable(r host.Region, axis host.Axis, delta int) bool {
	if h.Feasible == nil {
		return true
	}
	return h.Feasible(r, axis, delta)
}

func (h *FakeHost) Resize(r host.Region, axis host.Axis, delta int) {
	if !h.Resizable(r, axis, delta) {
		return
	}
	fr := r.(*FakeRegion)
	if axis == host.Vertical {
		fr.H += delta
	} else {
		fr.W += delta
	}
	h.Calls = append(h.Calls, ResizeCall{Region: fr.Name, Axis: axis, Delta: delta})
}

func (h *FakeHost) ContentType(r host.Region) string { return r.(*FakeRegion).Mode }
func (h *FakeHost) ContentID(r host.Region) string   { return r.(*FakeRegion).Name }

func (h *FakeHost) ResetHScroll(r host.Region) { r.(*FakeRegion).HScroll = 0 }
func (h *FakeHost) Recenter(r host.Region)     { r.(*FakeRegion).Recentered++ }

func (h *FakeHost) OnLayoutChange(fn func()) host.Unsubscribe {
	id := h.nextSub
	h.nextSub++
	h.layoutSubs[id] = fn
	return func() { delete(h.layoutSubs, id) }
}

func (h *FakeHost) OnPostCommand(fn func(host.Command)) host.Unsubscribe {
	id := h.nextSub
	h.nextSub++
	h.cmdSubs[id] = fn
	return func() { delete(h.cmdSubs, id) }
}

// EmitLayoutChange runs every layout-change subscriber.
func (h *FakeHost) EmitLayoutChange() {
	for _, fn := range h.layoutSubs {
		fn()
	}
}

// EmitPostCommand runs every post-command subscriber with cmd.
func (h *FakeHost) EmitPostCommand(cmd host.Command) {
	for _, fn := range h.cmdSubs {
		fn(cmd)
	}
}

// Subscribers returns the number of live subscriptions of both kinds.
func (h *FakeHost) Subscribers() int {
	return len(h.layoutSubs) + len(h.cmdSubs)
}

// ResetCalls clears the recorded resize calls.
func (h *FakeHost) ResetCalls() {
	h.Calls = nil
}
