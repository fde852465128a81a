package app

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
)

// MinibufferActive reports whether the command line has focus.
func (m *OS) MinibufferActive() bool {
	return m.Workspace.MinibufferFocused()
}

// EnterMinibuffer moves focus to the command line. golden-ratio mode stays
// out of the way while it has focus.
func (m *OS) EnterMinibuffer() {
	m.MinibufferInput = ""
	m.Execute(host.NewCommand(layout.CmdMinibufferOn))
}

// ExitMinibuffer returns focus to the panes and discards the input.
func (m *OS) ExitMinibuffer() {
	m.MinibufferInput = ""
	m.Execute(host.NewCommand(layout.CmdMinibufferOff))
}

// SubmitMinibuffer leaves the command line and runs what was typed.
func (m *OS) SubmitMinibuffer() {
	input := m.MinibufferInput
	m.ExitMinibuffer()

	steps, err := ParseScript(input)
	if err != nil {
		m.ShowNotification(err.Error(), "error", config.NotificationDuration)
		return
	}
	for _, s := range RunScript(m.Workspace, steps) {
		if s.Err != nil {
			m.ShowNotification(s.Err.Error(), "warning", config.NotificationDuration)
		}
	}
}
