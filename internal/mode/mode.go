package mode

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/charmbracelet/log"
)

// Mode is the enable/disable lifecycle. Enabling registers the layout-change
// and post-command paths and activates wrapped navigation commands;
// disabling disposes all of them. There are no partial states.
type Mode struct {
	host   host.Service
	orch   *Orchestrator
	subs   []host.Unsubscribe
	logger *log.Logger
}

// New creates a disabled mode over svc.
func New(svc host.Service, settings *Settings, logger *log.Logger) *Mode {
	orch := NewOrchestrator(svc, settings, logger)
	return &Mode{host: svc, orch: orch, logger: orch.logger}
}

// Orchestrator returns the underlying orchestrator.
func (m *Mode) Orchestrator() *Orchestrator {
	return m.orch
}

// Settings returns the live settings.
func (m *Mode) Settings() *Settings {
	return m.orch.settings
}

// Enabled reports whether the mode is on.
func (m *Mode) Enabled() bool {
	return m.subs != nil
}

// Enable turns the mode on. Enabling an enabled mode does nothing.
func (m *Mode) Enable() {
	if m.Enabled() {
		return
	}
	m.subs = []host.Unsubscribe{
		m.host.OnLayoutChange(m.orch.GoldenRatio),
		m.host.OnPostCommand(m.postCommand),
	}
	m.logger.Debug("golden-ratio mode enabled")
}

// Disable turns the mode off. Disabling a disabled mode does nothing.
func (m *Mode) Disable() {
	if !m.Enabled() {
		return
	}
	for _, unsub := range m.subs {
		unsub()
	}
	m.subs = nil
	m.logger.Debug("golden-ratio mode disabled")
}

// Toggle flips the mode and returns the new state.
func (m *Mode) Toggle() bool {
	if m.Enabled() {
		m.Disable()
	} else {
		m.Enable()
	}
	return m.Enabled()
}

// GoldenRatio runs one resize regardless of whether the mode is enabled.
func (m *Mode) GoldenRatio() {
	m.orch.GoldenRatio()
}

func (m *Mode) postCommand(cmd host.Command) {
	if !cmd.Matches(m.orch.settings.ExtraCommands) {
		return
	}
	m.logger.Debug("extra command triggered resize", "command", cmd.String())
	m.orch.GoldenRatio()
}

// Wrap decorates a navigation command so that, while the mode is enabled,
// a resize runs after fn returns.
func (m *Mode) Wrap(fn func()) func() {
	return func() {
		fn()
		if m.Enabled() {
			m.orch.GoldenRatio()
		}
	}
}

// WrapValue is Wrap for commands with a result. The result of fn is
// returned unchanged.
func WrapValue[T any](m *Mode, fn func() T) func() T {
	return func() T {
		v := fn()
		if m.Enabled() {
			m.orch.GoldenRatio()
		}
		return v
	}
}
