package layout

import (
	"fmt"
	"slices"

	"github.com/Gaurav-Gosain/goldenratio/internal/host"
)

// Built-in command names.
const (
	CmdSplitRight     host.CommandID = "split-window-right"
	CmdSplitBelow     host.CommandID = "split-window-below"
	CmdDeleteWindow   host.CommandID = "delete-window"
	CmdOtherWindow    host.CommandID = "other-window"
	CmdPreviousWindow host.CommandID = "previous-window"
	CmdSelectWindow   host.CommandID = "select-window"
	CmdDisplayBuffer  host.CommandID = "display-buffer"
	CmdWindmoveLeft   host.CommandID = "windmove-left"
	CmdWindmoveRight  host.CommandID = "windmove-right"
	CmdWindmoveUp     host.CommandID = "windmove-up"
	CmdWindmoveDown   host.CommandID = "windmove-down"
	CmdMinibufferOn   host.CommandID = "minibuffer-enter"
	CmdMinibufferOff  host.CommandID = "minibuffer-exit"
)

// helpBuffers are the buffers display-buffer cycles through.
var helpBuffers = []struct{ name, mode string }{
	{"*Help*", "help-mode"},
	{"*Messages*", "messages-buffer-mode"},
	{"*compilation*", "compilation-mode"},
}

// SelectWindowCommand returns the command that focuses the nth pane. It is
// a composite whose element is select-window, so hooks watching
// select-window see it.
func SelectWindowCommand(n int) host.Command {
	return host.Composite(host.CommandID(fmt.Sprintf("%s-%d", CmdSelectWindow, n)), CmdSelectWindow)
}

func (ws *Workspace) builtinCommands() map[host.CommandID]func() error {
	cmds := map[host.CommandID]func() error{
		CmdSplitRight: func() error {
			_, err := ws.SplitActive(SplitColumns, "", "")
			return err
		},
		CmdSplitBelow: func() error {
			_, err := ws.SplitActive(SplitRows, "", "")
			return err
		},
		CmdDeleteWindow:   ws.CloseActive,
		CmdOtherWindow:    func() error { ws.OtherWindow(1); return nil },
		CmdPreviousWindow: func() error { ws.OtherWindow(-1); return nil },
		CmdDisplayBuffer:  ws.displayNextHelp,
		CmdWindmoveLeft:   func() error { return ws.Windmove(Left) },
		CmdWindmoveRight:  func() error { return ws.Windmove(Right) },
		CmdWindmoveUp:     func() error { return ws.Windmove(Up) },
		CmdWindmoveDown:   func() error { return ws.Windmove(Down) },
		CmdMinibufferOn:   func() error { ws.SetMinibuffer(true); return nil },
		CmdMinibufferOff:  func() error { ws.SetMinibuffer(false); return nil },
	}
	for n := 1; n <= 9; n++ {
		cmds[SelectWindowCommand(n).ID] = func() error { return ws.SelectWindow(n) }
	}
	return cmds
}

// displayNextHelp shows the help buffer after the one currently focused.
func (ws *Workspace) displayNextHelp() error {
	next := 0
	for i, b := range helpBuffers {
		if ws.active.Name == b.name {
			next = (i + 1) % len(helpBuffers)
		}
	}
	b := helpBuffers[next]
	_, err := ws.DisplayBuffer(b.name, b.mode)
	return err
}

// Define binds id to fn, replacing any existing command of that name.
func (ws *Workspace) Define(id host.CommandID, fn func() error) {
	ws.commands[id] = fn
}

// Lookup returns the command bound to id.
func (ws *Workspace) Lookup(id host.CommandID) (func() error, bool) {
	fn, ok := ws.commands[id]
	return fn, ok
}

// Commands returns the defined command names, sorted.
func (ws *Workspace) Commands() []host.CommandID {
	ids := make([]host.CommandID, 0, len(ws.commands))
	for id := range ws.commands {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Execute runs cmd and then notifies post-command subscribers, even when the
// command fails. A command whose id is not defined runs its defined parts in
// order; a command with nothing defined is an error.
func (ws *Workspace) Execute(cmd host.Command) error {
	err := ws.run(cmd)
	if err != nil {
		ws.logger.Debug("command failed", "command", cmd, "err", err)
	}
	ws.emitPostCommand(cmd)
	return err
}

func (ws *Workspace) run(cmd host.Command) error {
	if fn, ok := ws.commands[cmd.ID]; ok {
		return fn()
	}

	ran := false
	for _, part := range cmd.Parts {
		fn, ok := ws.commands[part]
		if !ok {
			continue
		}
		ran = true
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", part, err)
		}
	}
	if !ran {
		return fmt.Errorf("unknown command %q", cmd.ID)
	}
	return nil
}
