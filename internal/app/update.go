package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
)

// TickerMsg represents a timer tick used for expiring notifications and the
// prefix key.
type TickerMsg time.Time

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, o *OS) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer.
func (m *OS) Init() tea.Cmd {
	return TickCmd()
}

// TickCmd returns a command that fires the next TickerMsg.
func TickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

func (m *OS) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		m.CleanupNotifications()
		if m.PrefixActive && time.Since(m.LastPrefixTime) > config.PrefixCommandTimeout {
			m.PrefixActive = false
		}
		return m, TickCmd()

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseWheelMsg:
		if inputHandler == nil {
			return m, nil
		}
		model, cmd := inputHandler(msg, m)
		if m.Quitting {
			return model, tea.Quit
		}
		return model, cmd

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil
	}
	return m, nil
}
