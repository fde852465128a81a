package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Actions backed by a workspace command
	for action, id := range map[string]host.CommandID{
		config.ActionSplitVertical:   layout.CmdSplitRight,
		config.ActionSplitHorizontal: layout.CmdSplitBelow,
		config.ActionClosePane:       layout.CmdDeleteWindow,
		config.ActionOtherWindow:     layout.CmdOtherWindow,
		config.ActionPrevWindow:      layout.CmdPreviousWindow,
		config.ActionDisplayBuffer:   layout.CmdDisplayBuffer,
		config.ActionWindmoveLeft:    layout.CmdWindmoveLeft,
		config.ActionWindmoveRight:   layout.CmdWindmoveRight,
		config.ActionWindmoveUp:      layout.CmdWindmoveUp,
		config.ActionWindmoveDown:    layout.CmdWindmoveDown,
		config.ActionGoldenRatio:     app.CmdGoldenRatio,
	} {
		d.Register(action, makeCommandHandler(id))
	}
	d.Register(config.ActionSelectWindow, handleSelectWindow)

	d.Register(config.ActionToggleGoldenRatio, handleToggleGoldenRatio)
	d.Register(config.ActionToggleMinibuffer, handleToggleMinibuffer)
	d.Register(config.ActionToggleLogs, handleToggleLogs)
	d.Register(config.ActionToggleHelp, handleToggleHelp)
	d.Register(config.ActionQuit, handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, o)
	}
	return o, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// commandFor reports cmd the way the key sequence invoked it: while the
// prefix is active the command becomes a composite led by the leader key.
func commandFor(msg tea.KeyPressMsg, o *app.OS, cmd host.Command) host.Command {
	if !o.PrefixActive {
		return cmd
	}
	leader := host.CommandID(o.KeybindRegistry.Leader())
	parts := append([]host.CommandID{leader, cmd.ID}, cmd.Parts...)
	return host.Composite(leader+" "+host.CommandID(msg.String()), parts...)
}

func makeCommandHandler(id host.CommandID) ActionHandler {
	return func(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
		o.Execute(commandFor(msg, o, host.NewCommand(id)))
		return o, nil
	}
}

// handleSelectWindow focuses the pane numbered by the digit pressed; 0 is
// the tenth pane.
func handleSelectWindow(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if msg.Code < '0' || msg.Code > '9' {
		return o, nil
	}
	n := int(msg.Code - '0')
	if n == 0 {
		n = 10
	}
	o.Execute(commandFor(msg, o, layout.SelectWindowCommand(n)))
	return o, nil
}

// ============================================================================
// Mode and Overlay Action Handlers
// ============================================================================

func handleToggleGoldenRatio(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	o.ToggleGoldenRatio()
	return o, nil
}

func handleToggleMinibuffer(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	if o.MinibufferActive() {
		o.ExitMinibuffer()
	} else {
		o.EnterMinibuffer()
	}
	return o, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	o.ShowLogs = !o.ShowLogs
	if o.ShowLogs {
		o.ShowHelp = false
		o.ScrollLogs(len(o.LogMessages))
	}
	return o, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	o.ShowHelp = !o.ShowHelp
	if o.ShowHelp {
		o.ShowLogs = false
	}
	return o, nil
}

func handleQuit(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	o.Execute(host.NewCommand(app.CmdQuit))
	return o, tea.Quit
}
