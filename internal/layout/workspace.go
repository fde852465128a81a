package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/charmbracelet/log"
)

// Errors returned by workspace operations.
var (
	ErrTooSmall   = errors.New("pane too small to split")
	ErrLastPane   = errors.New("cannot close the last pane")
	ErrNoSuchID   = errors.New("no pane with that id")
	ErrNoNeighbor = errors.New("no pane in that direction")
)

// Direction is a windmove direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

type subscriber[F any] struct {
	id int
	fn F
}

// Workspace is an in-memory tiled display. It implements host.Service.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Workspace struct {
	width, height       int
	minWidth, minHeight int
	root                *Node
	active              *Pane
	minibuffer          bool
	panes               int
	commands            map[host.CommandID]func() error
	layoutSubs          []subscriber[func()]
	cmdSubs             []subscriber[func(host.Command)]
	nextSub             int
	logger              *log.Logger
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithMinSize sets the workspace-wide minimum pane size.
func WithMinSize(width, height int) Option {
	return func(ws *Workspace) {
		ws.minWidth = width
		ws.minHeight = height
	}
}

// WithLogger routes workspace debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(ws *Workspace) {
		if l != nil {
			ws.logger = l
		}
	}
}

// NewWorkspace creates a workspace of width x height cells holding a single
// pane.
func NewWorkspace(width, height int, opts ...Option) *Workspace {
	ws := &Workspace{
		width:     max(1, width),
		height:    max(1, height),
		minWidth:  config.MinPaneWidth,
		minHeight: config.MinPaneHeight,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(ws)
	}

	p := ws.newPane("*scratch*", "fundamental-mode")
	ws.root = newLeaf(p)
	ws.active = p
	ws.relayout()
	ws.commands = ws.builtinCommands()
	return ws
}

func (ws *Workspace) newPane(name, mode string) *Pane {
	ws.panes++
	if name == "" {
		name = fmt.Sprintf("*pane-%d*", ws.panes)
	}
	if mode == "" {
		mode = "fundamental-mode"
	}
	return newPane(ws, name, mode)
}

func (ws *Workspace) relayout() {
	ws.root.place(Rect{W: ws.width, H: ws.height})
}

// Root returns the split tree root.
func (ws *Workspace) Root() *Node { return ws.root }

// Active returns the focused pane.
func (ws *Workspace) Active() *Pane { return ws.active }

// Panes returns every pane in display order.
func (ws *Workspace) Panes() []*Pane {
	return ws.root.leaves(nil)
}

// Rects returns each pane's rectangle keyed by pane id.
func (ws *Workspace) Rects() map[string]Rect {
	out := make(map[string]Rect)
	for _, p := range ws.Panes() {
		out[p.ID()] = p.rect
	}
	return out
}

// PaneAt returns the pane covering cell (x, y), or nil.
func (ws *Workspace) PaneAt(x, y int) *Pane {
	for _, p := range ws.Panes() {
		r := p.rect
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return p
		}
	}
	return nil
}

// PaneByName returns the first pane showing name, or nil.
func (ws *Workspace) PaneByName(name string) *Pane {
	for _, p := range ws.Panes() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// SplitActive splits the focused pane in two along s. The new pane shows
// name (a generated name when empty) and receives focus.
func (ws *Workspace) SplitActive(s SplitType, name, mode string) (*Pane, error) {
	if s == SplitNone {
		return nil, fmt.Errorf("split active pane: invalid orientation %s", s)
	}

	old := ws.active
	size, minSize := old.rect.W, old.minWidth()
	if s == SplitRows {
		size, minSize = old.rect.H, old.minHeight()
	}
	second := size / 2
	first := size - second
	if second < minSize || first < minSize {
		return nil, fmt.Errorf("split %s (%d cells): %w", old.Name, size, ErrTooSmall)
	}

	p := ws.newPane(name, mode)
	leaf := old.node
	if parent := leaf.parent; parent != nil && parent.Split == s {
		i := parent.indexOf(leaf)
		parent.Sizes[i] = first
		n := newLeaf(p)
		n.parent = parent
		parent.Children = insertAt(parent.Children, i+1, n)
		parent.Sizes = insertAt(parent.Sizes, i+1, second)
	} else {
		// Turn the leaf into a split holding the old pane and the new one.
		a, b := newLeaf(old), newLeaf(p)
		a.parent, b.parent = leaf, leaf
		leaf.Pane = nil
		leaf.Split = s
		leaf.Children = []*Node{a, b}
		leaf.Sizes = []int{first, second}
	}

	ws.active = p
	ws.relayout()
	ws.logger.Debug("split", "pane", old.Name, "orientation", s, "new", p.Name)
	ws.emitLayoutChange()
	return p, nil
}

// CloseActive removes the focused pane; its cells go to the nearest sibling
// and focus moves there.
func (ws *Workspace) CloseActive() error {
	leaf := ws.active.node
	parent := leaf.parent
	if parent == nil {
		return ErrLastPane
	}

	i := parent.indexOf(leaf)
	freed := parent.Sizes[i]
	parent.Children = removeAt(parent.Children, i)
	parent.Sizes = removeAt(parent.Sizes, i)
	heir := max(0, i-1)
	parent.Sizes[heir] += freed
	ws.applyDelta(parent.Children[heir], parent.Split, freed)
	next := parent.Children[heir].firstLeaf()

	if len(parent.Children) == 1 {
		ws.collapse(parent)
	}

	closed := ws.active.Name
	ws.active.node = nil
	ws.active = next
	ws.relayout()
	ws.logger.Debug("close", "pane", closed, "focus", next.Name)
	ws.emitLayoutChange()
	return nil
}

// collapse replaces a single-child node with its child.
func (ws *Workspace) collapse(n *Node) {
	only := n.Children[0]
	n.Split = only.Split
	n.Children = only.Children
	n.Sizes = only.Sizes
	n.Pane = only.Pane
	if n.Pane != nil {
		n.Pane.node = n
	}
	for _, c := range n.Children {
		c.parent = n
	}
}

// Focus moves focus to the pane with id.
func (ws *Workspace) Focus(id string) error {
	for _, p := range ws.Panes() {
		if p.ID() == id {
			ws.focus(p)
			return nil
		}
	}
	return fmt.Errorf("focus %s: %w", id, ErrNoSuchID)
}

func (ws *Workspace) focus(p *Pane) {
	if p == ws.active {
		return
	}
	ws.active = p
	ws.emitLayoutChange()
}

// OtherWindow moves focus n panes forward in display order (backward when
// negative), wrapping around.
func (ws *Workspace) OtherWindow(n int) {
	panes := ws.Panes()
	i := indexOfPane(panes, ws.active)
	k := len(panes)
	ws.focus(panes[((i+n)%k+k)%k])
}

// SelectWindow focuses the nth pane in display order, counting from 1.
func (ws *Workspace) SelectWindow(n int) error {
	panes := ws.Panes()
	if n < 1 || n > len(panes) {
		return fmt.Errorf("select window %d: only %d panes", n, len(panes))
	}
	ws.focus(panes[n-1])
	return nil
}

// Windmove focuses the pane adjacent to the active one in direction d,
// preferring the neighbor that overlaps the active pane the most.
func (ws *Workspace) Windmove(d Direction) error {
	a := ws.active.rect
	var best *Pane
	bestOverlap := 0
	for _, p := range ws.Panes() {
		if p == ws.active {
			continue
		}
		r := p.rect
		var touching bool
		var overlap int
		switch d {
		case Left:
			touching, overlap = r.X+r.W == a.X, span(a.Y, a.H, r.Y, r.H)
		case Right:
			touching, overlap = a.X+a.W == r.X, span(a.Y, a.H, r.Y, r.H)
		case Up:
			touching, overlap = r.Y+r.H == a.Y, span(a.X, a.W, r.X, r.W)
		case Down:
			touching, overlap = a.Y+a.H == r.Y, span(a.X, a.W, r.X, r.W)
		}
		if touching && overlap > bestOverlap {
			best, bestOverlap = p, overlap
		}
	}
	if best == nil {
		return fmt.Errorf("windmove %s: %w", d, ErrNoNeighbor)
	}
	ws.focus(best)
	return nil
}

// span returns the length of the overlap of [a, a+al) and [b, b+bl).
func span(a, al, b, bl int) int {
	return max(0, min(a+al, b+bl)-max(a, b))
}

// DisplayBuffer shows name in a pane and focuses it. A pane already showing
// name is reused; otherwise the next non-active pane is taken over, and a
// single-pane workspace is split along its longer side.
func (ws *Workspace) DisplayBuffer(name, mode string) (*Pane, error) {
	if p := ws.PaneByName(name); p != nil {
		ws.focus(p)
		return p, nil
	}

	panes := ws.Panes()
	if len(panes) > 1 {
		i := indexOfPane(panes, ws.active)
		p := panes[(i+1)%len(panes)]
		p.SetContent(name, mode, nil)
		ws.focus(p)
		return p, nil
	}

	s := SplitRows
	if ws.active.rect.W >= 2*ws.active.rect.H {
		s = SplitColumns
	}
	return ws.SplitActive(s, name, mode)
}

// SetMinibuffer moves focus into or out of the command input area.
func (ws *Workspace) SetMinibuffer(focused bool) {
	ws.minibuffer = focused
}

// SetDisplay resizes the workspace, scaling every split proportionally.
func (ws *Workspace) SetDisplay(width, height int) {
	width, height = max(1, width), max(1, height)
	if width == ws.width && height == ws.height {
		return
	}
	ws.root.rescale(SplitColumns, width)
	ws.root.rescale(SplitRows, height)
	ws.width, ws.height = width, height
	ws.relayout()
	ws.emitLayoutChange()
}

// --- host.Service ---

func (ws *Workspace) Regions() []host.Region {
	panes := ws.Panes()
	out := make([]host.Region, len(panes))
	for i, p := range panes {
		out[i] = p
	}
	return out
}

func (ws *Workspace) ActiveRegion() host.Region { return ws.active }

func (ws *Workspace) MinibufferFocused() bool { return ws.minibuffer }

func (ws *Workspace) Display() (height, width int) { return ws.height, ws.width }

func (ws *Workspace) ContentType(r host.Region) string {
	if p := ws.pane(r); p != nil {
		return p.Mode
	}
	return ""
}

func (ws *Workspace) ContentID(r host.Region) string {
	if p := ws.pane(r); p != nil {
		return p.Name
	}
	return ""
}

func (ws *Workspace) ResetHScroll(r host.Region) {
	if p := ws.pane(r); p != nil {
		p.HScroll = 0
	}
}

// Recenter scrolls so the cursor line sits in the middle of the pane.
func (ws *Workspace) Recenter(r host.Region) {
	p := ws.pane(r)
	if p == nil {
		return
	}
	top := p.Cursor - p.rect.H/2
	top = min(top, len(p.Lines)-p.rect.H)
	p.ScrollTop = max(0, top)
}

func (ws *Workspace) OnLayoutChange(fn func()) host.Unsubscribe {
	id := ws.subscribeID()
	ws.layoutSubs = append(ws.layoutSubs, subscriber[func()]{id, fn})
	return func() { ws.layoutSubs = unsubscribe(ws.layoutSubs, id) }
}

func (ws *Workspace) OnPostCommand(fn func(host.Command)) host.Unsubscribe {
	id := ws.subscribeID()
	ws.cmdSubs = append(ws.cmdSubs, subscriber[func(host.Command)]{id, fn})
	return func() { ws.cmdSubs = unsubscribe(ws.cmdSubs, id) }
}

// Subscribers returns the number of live layout-change and post-command
// subscriptions.
func (ws *Workspace) Subscribers() (layout, commands int) {
	return len(ws.layoutSubs), len(ws.cmdSubs)
}

func (ws *Workspace) subscribeID() int {
	ws.nextSub++
	return ws.nextSub
}

func unsubscribe[F any](subs []subscriber[F], id int) []subscriber[F] {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

func (ws *Workspace) emitLayoutChange() {
	// Copy so handlers can unsubscribe while being notified.
	subs := append([]subscriber[func()](nil), ws.layoutSubs...)
	for _, s := range subs {
		s.fn()
	}
}

func (ws *Workspace) emitPostCommand(cmd host.Command) {
	subs := append([]subscriber[func(host.Command)](nil), ws.cmdSubs...)
	for _, s := range subs {
		s.fn(cmd)
	}
}

// pane maps a region back to a pane of this workspace.
func (ws *Workspace) pane(r host.Region) *Pane {
	p, ok := r.(*Pane)
	if !ok || p.ws != ws || p.node == nil {
		return nil
	}
	return p
}

func indexOfPane(panes []*Pane, p *Pane) int {
	for i, q := range panes {
		if q == p {
			return i
		}
	}
	return 0
}

func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
