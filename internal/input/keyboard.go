package input

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
)

// HandleKeyPress handles all keyboard input and routes to mode-specific handlers
func HandleKeyPress(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	key := msg.String()

	if o.MinibufferActive() {
		return handleMinibufferKey(msg, o)
	}
	if o.ShowLogs {
		return handleLogViewerKey(msg, o)
	}
	if o.ShowHelp {
		if key == "esc" || key == "q" || key == "?" {
			o.ShowHelp = false
		}
		return o, nil
	}

	if o.KeybindRegistry.IsLeader(key) {
		return handlePrefixKey(msg, o)
	}
	if o.PrefixActive {
		if time.Since(o.LastPrefixTime) <= config.PrefixCommandTimeout {
			return HandlePrefixCommand(msg, o)
		}
		o.PrefixActive = false
	}

	if action := o.KeybindRegistry.DirectAction(key); action != "" {
		return GetDispatcher().Dispatch(action, msg, o)
	}
	return handlePaneKey(msg, o)
}

func handlePrefixKey(_ tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	// If prefix is already active, deactivate it (double leader key cancels)
	if o.PrefixActive {
		o.PrefixActive = false
		return o, nil
	}
	o.PrefixActive = true
	o.LastPrefixTime = time.Now()
	return o, nil
}

// HandlePrefixCommand handles the key after the leader. The prefix stays
// active while the action runs so the command is reported with its leader.
func HandlePrefixCommand(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	defer func() { o.PrefixActive = false }()

	if msg.String() == "esc" {
		return o, nil
	}
	action := o.KeybindRegistry.PrefixAction(msg.String())
	if action == "" {
		o.ShowNotification("no binding for "+o.KeybindRegistry.Leader()+" "+msg.String(), "warning", config.NotificationDuration)
		return o, nil
	}
	return GetDispatcher().Dispatch(action, msg, o)
}

// handlePaneKey moves within the focused pane's text.
func handlePaneKey(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	p := o.Workspace.Active()
	switch msg.String() {
	case "up", "k":
		p.MoveCursor(-1)
	case "down", "j":
		p.MoveCursor(1)
	case "pgup":
		p.MoveCursor(-p.Height() / 2)
	case "pgdown":
		p.MoveCursor(p.Height() / 2)
	case "left", "h":
		p.ScrollHorizontal(-1)
	case "right", "l":
		p.ScrollHorizontal(1)
	case "ctrl+l":
		o.Workspace.Recenter(p)
	case ":":
		o.EnterMinibuffer()
	}
	return o, nil
}

func handleMinibufferKey(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		o.ExitMinibuffer()
	case "enter":
		o.SubmitMinibuffer()
	case "backspace":
		if r := []rune(o.MinibufferInput); len(r) > 0 {
			o.MinibufferInput = string(r[:len(r)-1])
		}
	case "tab":
		o.MinibufferInput = complete(o.Workspace, o.MinibufferInput)
	default:
		o.MinibufferInput += msg.Text
	}
	return o, nil
}

// complete extends input to the longest prefix shared by the commands it
// starts.
func complete(ws *layout.Workspace, input string) string {
	var match string
	for _, id := range ws.Commands() {
		name := string(id)
		if len(name) < len(input) || name[:len(input)] != input {
			continue
		}
		if match == "" {
			match = name
			continue
		}
		n := 0
		for n < len(match) && n < len(name) && match[n] == name[n] {
			n++
		}
		match = match[:n]
	}
	if len(match) > len(input) {
		return match
	}
	return input
}

func handleLogViewerKey(msg tea.KeyPressMsg, o *app.OS) (*app.OS, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		o.ShowLogs = false
		o.LogScrollOffset = 0
	case "up", "k":
		o.ScrollLogs(-1)
	case "down", "j":
		o.ScrollLogs(1)
	case "pgup", "ctrl+u":
		o.ScrollLogs(-10)
	case "pgdown", "ctrl+d":
		o.ScrollLogs(10)
	case "g", "home":
		o.LogScrollOffset = 0
	case "G", "end":
		o.ScrollLogs(len(o.LogMessages))
	}
	return o, nil
}
