package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
)

// handleMouseClick focuses the pane under a left click.
func handleMouseClick(msg tea.MouseClickMsg, o *app.OS) (*app.OS, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || o.ShowHelp || o.ShowLogs {
		return o, nil
	}
	p := o.Workspace.PaneAt(mouse.X, mouse.Y)
	if p == nil {
		return o, nil
	}
	if o.MinibufferActive() {
		o.ExitMinibuffer()
	}
	if err := o.Workspace.Focus(p.ID()); err != nil {
		o.LogWarn("focus %s: %v", p.Name, err)
	}
	return o, nil
}

// handleMouseWheel scrolls the pane under the pointer, or the log viewer.
func handleMouseWheel(msg tea.MouseWheelMsg, o *app.OS) (*app.OS, tea.Cmd) {
	mouse := msg.Mouse()
	step := 0
	switch mouse.Button {
	case tea.MouseWheelUp:
		step = -1
	case tea.MouseWheelDown:
		step = 1
	default:
		return o, nil
	}

	if o.ShowLogs {
		o.ScrollLogs(step)
		return o, nil
	}
	if p := o.Workspace.PaneAt(mouse.X, mouse.Y); p != nil {
		p.MoveCursor(step * 3)
	}
	return o, nil
}
