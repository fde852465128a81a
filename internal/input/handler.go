// Package input routes keyboard and mouse events to pane commands and the
// UI overlays.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
)

// HandleInput is the main entry point for all input handling.
// It is registered with app.SetInputHandler.
func HandleInput(msg tea.Msg, o *app.OS) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, o)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, o)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, o)
	}
	return o, nil
}
