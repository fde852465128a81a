package input

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
)

var leaderKey = tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func press(o *app.OS, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = HandleKeyPress(m, o)
	}
	return cmd
}

func typeText(o *app.OS, s string) {
	for _, r := range s {
		press(o, key(r))
	}
}

// newSplitOS returns a 160x50 app split side by side, focus on the right.
func newSplitOS(t *testing.T) *app.OS {
	t.Helper()
	o := app.New(config.DefaultConfig(), 160, 50)
	press(o, leaderKey, key('|'))
	if n := len(o.Workspace.Panes()); n != 2 {
		t.Fatalf("expected 2 panes after split, got %d", n)
	}
	return o
}

func TestPrefixSplitResizesNewPane(t *testing.T) {
	o := newSplitOS(t)
	panes := o.Workspace.Panes()

	if o.Workspace.Active() != panes[1] {
		t.Fatal("new pane should have focus")
	}
	if panes[1].Width() != 98 || panes[0].Width() != 62 {
		t.Errorf("widths = %d/%d, expected 62/98", panes[0].Width(), panes[1].Width())
	}
	if o.PrefixActive {
		t.Error("prefix should clear after the command")
	}
}

func TestPrefixOtherWindow(t *testing.T) {
	o := newSplitOS(t)
	left := o.Workspace.Panes()[0]

	press(o, leaderKey, key('o'))
	if o.Workspace.Active() != left {
		t.Fatal("focus should move to the left pane")
	}
	if left.Width() != 98 {
		t.Errorf("left width = %d, expected 98", left.Width())
	}
}

func TestDirectWindmove(t *testing.T) {
	o := newSplitOS(t)
	panes := o.Workspace.Panes()

	press(o, tea.KeyPressMsg{Code: 'h', Mod: tea.ModAlt})
	if o.Workspace.Active() != panes[0] || panes[0].Width() != 98 {
		t.Errorf("alt+h: active %s width %d", o.Workspace.Active().Name, panes[0].Width())
	}

	press(o, tea.KeyPressMsg{Code: 'l', Mod: tea.ModAlt})
	if o.Workspace.Active() != panes[1] || panes[1].Width() != 98 {
		t.Errorf("alt+l: active %s width %d", o.Workspace.Active().Name, panes[1].Width())
	}
}

func TestPrefixSelectWindow(t *testing.T) {
	o := newSplitOS(t)
	press(o, leaderKey, key('1'))
	if o.Workspace.Active() != o.Workspace.Panes()[0] {
		t.Error("ctrl+b 1 should focus the first pane")
	}

	before := len(o.Notifications)
	press(o, leaderKey, key('7'))
	if len(o.Notifications) != before+1 {
		t.Error("selecting a missing pane should notify")
	}
}

func TestPrefixKeyHandling(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(o *app.OS)
		keys       []tea.KeyPressMsg
		wantPrefix bool
		wantPanes  int
	}{
		{
			name:       "leader activates prefix",
			keys:       []tea.KeyPressMsg{leaderKey},
			wantPrefix: true,
			wantPanes:  1,
		},
		{
			name:      "double leader cancels",
			keys:      []tea.KeyPressMsg{leaderKey, leaderKey},
			wantPanes: 1,
		},
		{
			name: "expired prefix is ignored",
			setup: func(o *app.OS) {
				o.PrefixActive = true
				o.LastPrefixTime = time.Now().Add(-2 * config.PrefixCommandTimeout)
			},
			keys:      []tea.KeyPressMsg{key('|')},
			wantPanes: 1,
		},
		{
			name:      "unbound prefix key",
			keys:      []tea.KeyPressMsg{leaderKey, key('z')},
			wantPanes: 1,
		},
		{
			name:      "split below",
			keys:      []tea.KeyPressMsg{leaderKey, key('-')},
			wantPanes: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := app.New(config.DefaultConfig(), 160, 50)
			if tt.setup != nil {
				tt.setup(o)
			}
			press(o, tt.keys...)
			if o.PrefixActive != tt.wantPrefix {
				t.Errorf("prefix active = %v, expected %v", o.PrefixActive, tt.wantPrefix)
			}
			if n := len(o.Workspace.Panes()); n != tt.wantPanes {
				t.Errorf("panes = %d, expected %d", n, tt.wantPanes)
			}
		})
	}
}

func TestToggleGoldenRatio(t *testing.T) {
	o := newSplitOS(t)
	left := o.Workspace.Panes()[0]

	press(o, leaderKey, key('g'))
	if o.GoldenRatio.Enabled() {
		t.Fatal("ctrl+b g should disable the mode")
	}
	press(o, leaderKey, key('o'))
	if left.Width() != 62 {
		t.Errorf("disabled mode resized the pane to %d", left.Width())
	}

	press(o, leaderKey, key('G'))
	if left.Width() != 98 {
		t.Errorf("ctrl+b G should resize once, width %d", left.Width())
	}
}

func TestMinibufferRunsCommand(t *testing.T) {
	o := app.New(config.DefaultConfig(), 160, 50)

	press(o, leaderKey, key(':'))
	if !o.MinibufferActive() {
		t.Fatal("minibuffer should have focus")
	}
	typeText(o, "split-window-belox")
	press(o, tea.KeyPressMsg{Code: tea.KeyBackspace}, key('w'))
	if o.MinibufferInput != "split-window-below" {
		t.Fatalf("input = %q", o.MinibufferInput)
	}
	press(o, tea.KeyPressMsg{Code: tea.KeyEnter})

	if o.MinibufferActive() {
		t.Error("enter should leave the minibuffer")
	}
	panes := o.Workspace.Panes()
	if len(panes) != 2 {
		t.Fatalf("panes = %d, expected 2", len(panes))
	}
	if panes[1].Height() != 29 {
		t.Errorf("new pane height = %d, expected 29", panes[1].Height())
	}
}

func TestMinibufferEscape(t *testing.T) {
	o := app.New(config.DefaultConfig(), 160, 50)
	press(o, leaderKey, key(':'))
	typeText(o, "delete-window")
	press(o, tea.KeyPressMsg{Code: tea.KeyEscape})

	if o.MinibufferActive() || o.MinibufferInput != "" {
		t.Error("esc should leave the minibuffer and clear the input")
	}
	if len(o.Workspace.Panes()) != 1 {
		t.Error("escaped input should not run")
	}
}

func TestMinibufferComplete(t *testing.T) {
	o := app.New(config.DefaultConfig(), 160, 50)
	press(o, leaderKey, key(':'))
	typeText(o, "windmove-r")
	press(o, tea.KeyPressMsg{Code: tea.KeyTab})
	if o.MinibufferInput != "windmove-right" {
		t.Errorf("completed = %q", o.MinibufferInput)
	}
}

func TestOverlays(t *testing.T) {
	o := app.New(config.DefaultConfig(), 160, 50)

	press(o, leaderKey, key('?'))
	if !o.ShowHelp {
		t.Fatal("help should open")
	}
	press(o, key('|'))
	if len(o.Workspace.Panes()) != 1 {
		t.Error("keys should not reach panes while help is open")
	}
	press(o, tea.KeyPressMsg{Code: tea.KeyEscape})
	if o.ShowHelp {
		t.Error("esc should close help")
	}

	press(o, leaderKey, key('L'))
	if !o.ShowLogs {
		t.Fatal("log viewer should open")
	}
	press(o, key('q'))
	if o.ShowLogs {
		t.Error("q should close the log viewer")
	}
}

func TestQuit(t *testing.T) {
	o := app.New(config.DefaultConfig(), 160, 50)
	if cmd := press(o, leaderKey, key('q')); cmd == nil {
		t.Error("quit should return a command")
	}
	if !o.Quitting {
		t.Error("quit should mark the app as quitting")
	}
}

func TestPaneCursorKeys(t *testing.T) {
	o := app.New(config.DefaultConfig(), 160, 50)
	p := o.Workspace.Active()

	press(o, key('j'), key('j'), key('k'))
	if p.Cursor != 1 {
		t.Errorf("cursor = %d, expected 1", p.Cursor)
	}
	press(o, key('l'), key('l'))
	if p.HScroll != 2 {
		t.Errorf("hscroll = %d, expected 2", p.HScroll)
	}
}
