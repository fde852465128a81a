package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
)

// GetCanvas composes panes and, when render is set, the status line and
// overlays.
func (m *OS) GetCanvas(render bool) *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Border(getBorder()).
		BorderTop(false)

	var layers []*lipgloss.Layer
	for i, p := range m.Workspace.Panes() {
		layers = append(layers, m.renderPane(box, i+1, p))
	}

	if render {
		layers = append(layers, m.renderOverlays()...)
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

func (m *OS) renderPane(box lipgloss.Style, n int, p *layout.Pane) *lipgloss.Layer {
	r := p.Rect()
	if r.W < 3 || r.H < 3 {
		fill := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", r.W)+"\n", r.H), "\n")
		return lipgloss.NewLayer(fill).X(r.X).Y(r.Y).Z(config.ZIndexPanes).ID(p.ID())
	}

	focused := p == m.Workspace.Active()
	c := m.borderColor(p)
	content := visibleLines(p, r.W-2, r.H-2, focused)
	rendered := addToBorder(
		box.Width(r.W).
			Height(r.H-1).
			BorderForeground(c).
			Render(content),
		c,
		paneTitle(n, p, r.W-2),
	)
	return lipgloss.NewLayer(rendered).X(r.X).Y(r.Y).Z(config.ZIndexPanes).ID(p.ID())
}

func (m *OS) View() tea.View {
	var view tea.View
	if m.Quitting {
		return view
	}
	view.SetContent(lipgloss.Sprint(m.GetCanvas(true).Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}
