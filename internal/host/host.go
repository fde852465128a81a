// Package host defines the contract between the golden-ratio core and the
// environment that owns the tiled layout.
//
// The core never creates or destroys regions. It queries geometry, asks
// whether a resize is feasible, and requests it. Everything else (the region
// tree, focus, event delivery) belongs to the Service implementation.
package host

// Axis selects the dimension a resize applies to.
type Axis int

const (
	// Vertical resizes along rows (height).
	Vertical Axis = iota
	// Horizontal resizes along columns (width).
	Horizontal
)

// String returns a short name for the axis.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Region is one rectangular tile of the display.
type Region interface {
	ID() string
	Width() int
	Height() int
	// FullWidth reports whether the region spans the whole display width.
	FullWidth() bool
	// FullHeight reports whether the region spans the whole display height.
	FullHeight() bool
}

// Predicate is a zero-argument check, used for inhibit hooks.
type Predicate func() bool

// Unsubscribe disposes an event subscription. Calling it more than once is
// allowed and has no further effect.
type Unsubscribe func()

// Service is the Host Layout Service. Implementations deliver events
// serially on a single control thread; the core relies on that and does not
// lock.
type Service interface {
	// Regions returns a snapshot of every visible region.
	Regions() []Region
	// ActiveRegion returns the focused region.
	ActiveRegion() Region
	// MinibufferFocused reports whether focus is on the command input area.
	MinibufferFocused() bool
	// Display returns the drawable area in rows and columns.
	Display() (height, width int)

	// Resizable reports whether r can grow (delta > 0) or shrink (delta < 0)
	// by exactly |delta| cells along axis.
	Resizable(r Region, axis Axis, delta int) bool
	// Resize applies delta along axis. It is a no-op if the request is
	// infeasible.
	Resize(r Region, axis Axis, delta int)

	// ContentType returns the content-type identifier (mode name) of r.
	ContentType(r Region) string
	// ContentID returns the content identifier (buffer name) of r.
	ContentID(r Region) string

	// ResetHScroll cancels any horizontal scroll offset of r.
	ResetHScroll(r Region)
	// Recenter scrolls r vertically so the cursor sits in the middle.
	Recenter(r Region)

	// OnLayoutChange registers fn to run after any change to the region
	// tree: split, close, focus move, display resize.
	OnLayoutChange(fn func()) Unsubscribe
	// OnPostCommand registers fn to run after every user command.
	OnPostCommand(fn func(Command)) Unsubscribe
}
