package layout

import (
	"fmt"

	"github.com/google/uuid"
)

// Pane is a leaf of the split tree showing one buffer.
type Pane struct {
	Name string
	Mode string

	// Per-pane minimums. The workspace minimum applies when larger.
	MinWidth  int
	MinHeight int
	// Fixed panes never change size along that axis.
	FixedWidth  bool
	FixedHeight bool

	HScroll   int
	ScrollTop int
	Cursor    int
	Lines     []string

	id   string
	rect Rect
	node *Node
	ws   *Workspace
}

func newPane(ws *Workspace, name, mode string) *Pane {
	return &Pane{
		id:    uuid.New().String(),
		Name:  name,
		Mode:  mode,
		Lines: sampleLines(name, 60),
		ws:    ws,
	}
}

// sampleLines fills a buffer with numbered placeholder lines.
func sampleLines(name string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%3d  %s", i+1, name)
	}
	return lines
}

// ID returns the pane's stable identifier.
func (p *Pane) ID() string { return p.id }

// Rect returns the pane's last computed rectangle.
func (p *Pane) Rect() Rect { return p.rect }

func (p *Pane) Width() int  { return p.rect.W }
func (p *Pane) Height() int { return p.rect.H }

func (p *Pane) FullWidth() bool {
	return p.ws != nil && p.rect.W == p.ws.width
}

func (p *Pane) FullHeight() bool {
	return p.ws != nil && p.rect.H == p.ws.height
}

func (p *Pane) minWidth() int {
	if p.ws != nil {
		return max(p.MinWidth, p.ws.minWidth)
	}
	return p.MinWidth
}

func (p *Pane) minHeight() int {
	if p.ws != nil {
		return max(p.MinHeight, p.ws.minHeight)
	}
	return p.MinHeight
}

// SetContent replaces the buffer shown in the pane.
func (p *Pane) SetContent(name, mode string, lines []string) {
	p.Name = name
	p.Mode = mode
	if lines == nil {
		lines = sampleLines(name, 60)
	}
	p.Lines = lines
	p.HScroll = 0
	p.ScrollTop = 0
	p.Cursor = 0
}

// MoveCursor moves the cursor by n lines and scrolls just enough to keep it
// inside the pane.
func (p *Pane) MoveCursor(n int) {
	if len(p.Lines) == 0 {
		return
	}
	p.Cursor = min(max(p.Cursor+n, 0), len(p.Lines)-1)
	// border rows
	visible := max(p.rect.H-2, 1)
	if p.Cursor < p.ScrollTop {
		p.ScrollTop = p.Cursor
	} else if p.Cursor >= p.ScrollTop+visible {
		p.ScrollTop = p.Cursor - visible + 1
	}
}

// ScrollHorizontal shifts the view right by n columns, or left for negative n.
func (p *Pane) ScrollHorizontal(n int) {
	p.HScroll = max(p.HScroll+n, 0)
}
