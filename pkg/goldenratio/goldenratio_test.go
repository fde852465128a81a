package goldenratio

import (
	"testing"

	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
	"github.com/Gaurav-Gosain/goldenratio/internal/mode"
	"github.com/Gaurav-Gosain/goldenratio/internal/policy"
)

// twoColumns returns a 160x48 workspace split side by side with focus on
// the right pane.
func twoColumns(t *testing.T) (*layout.Workspace, *layout.Pane, *layout.Pane) {
	t.Helper()
	ws := layout.NewWorkspace(160, 48, layout.WithMinSize(4, 2))
	left := ws.Active()
	right, err := ws.SplitActive(layout.SplitColumns, "right", "text-mode")
	if err != nil {
		t.Fatal(err)
	}
	return ws, left, right
}

func TestFocusChangeResizes(t *testing.T) {
	ws, left, right := twoColumns(t)
	m := New(ws)
	m.Enable()
	defer m.Disable()

	ws.OtherWindow(1)
	if left.Width() != 98 || right.Width() != 62 {
		t.Errorf("widths = %d/%d, expected 98/62", left.Width(), right.Width())
	}
	// No split along rows, so the height stays
	if left.Height() != 48 {
		t.Errorf("height = %d, expected 48", left.Height())
	}

	ws.OtherWindow(1)
	if right.Width() != 98 || left.Width() != 62 {
		t.Errorf("widths after refocus = %d/%d, expected 62/98", left.Width(), right.Width())
	}
}

func TestStackedPanesResizeHeight(t *testing.T) {
	ws := layout.NewWorkspace(160, 48, layout.WithMinSize(4, 2))
	top := ws.Active()
	bottom, _ := ws.SplitActive(layout.SplitRows, "", "")
	m := New(ws)
	m.Enable()

	ws.Focus(top.ID())
	if top.Height() != 29 || bottom.Height() != 19 {
		t.Errorf("heights = %d/%d, expected 29/19", top.Height(), bottom.Height())
	}
	if top.Width() != 160 {
		t.Errorf("width = %d, full-width pane should keep the display width", top.Width())
	}
}

func TestRepeatedTriggersDoNotGrow(t *testing.T) {
	ws, left, _ := twoColumns(t)
	m := New(ws)

	ws.Focus(left.ID())
	first := m.Orchestrator().Run()
	second := m.Orchestrator().Run()

	if !first.Result.ColsApplied || first.Result.Cols != 18 {
		t.Fatalf("first run = %+v", first.Result)
	}
	if second.Decision.Reason != policy.ReasonSettled || second.Result.Changed() {
		t.Errorf("second run = %+v %+v", second.Decision, second.Result)
	}
	if left.Width() != 98 {
		t.Errorf("width = %d, expected 98", left.Width())
	}
}

func TestExclusions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		pane string
		mode string
	}{
		{"mode", WithExcludedModes("help-mode"), "*Help*", "help-mode"},
		{"name", WithExcludedNames("*Help*"), "*Help*", "help-mode"},
		{"pattern", WithExcludedPatterns("*Ediff*"), "*Ediff Control Panel*", "ediff-mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, left, _ := twoColumns(t)
			m := New(ws, tt.opt)
			m.Enable()

			ws.Active().SetContent(tt.pane, tt.mode, nil)
			ws.Execute(layout.SelectWindowCommand(2))
			if last := m.Orchestrator().Last(); last.Decision.Fire {
				t.Errorf("excluded pane resized: %+v", last)
			}
			if left.Width() != 80 {
				t.Errorf("left width = %d, expected 80", left.Width())
			}
		})
	}
}

func TestInhibitUnanimous(t *testing.T) {
	ws, left, _ := twoColumns(t)
	zoomed, locked := true, false
	m := New(ws, WithInhibit(func() bool { return zoomed }, func() bool { return locked }))
	m.Enable()

	ws.Focus(left.ID())
	if left.Width() != 98 {
		t.Errorf("split inhibit vote should not suppress, width %d", left.Width())
	}

	locked = true
	ws.OtherWindow(1)
	if last := m.Orchestrator().Last(); last.Decision.Reason != policy.ReasonInhibited {
		t.Errorf("expected inhibited, got %s", last.Decision.Reason)
	}
}

func TestPrefixedExtraCommand(t *testing.T) {
	ws, _, _ := twoColumns(t)
	m := New(ws)
	m.Enable()

	// No pane to the right, so focus stays and only post-command fires
	before := m.Orchestrator().Runs()
	ws.Execute(Command{ID: "ctrl+b l", Parts: []CommandID{"ctrl+b", layout.CmdWindmoveRight}})
	if m.Orchestrator().Runs() != before+1 {
		t.Errorf("prefixed windmove-right should trigger a run")
	}

	ws.Execute(Command{ID: "ctrl+b ?", Parts: []CommandID{"ctrl+b", "describe-bindings"}})
	if m.Orchestrator().Runs() != before+1 {
		t.Errorf("unrelated composite should not trigger a run")
	}
}

func TestWrapValueDisplayBuffer(t *testing.T) {
	ws, left, _ := twoColumns(t)
	m := New(ws)
	ws.Focus(left.ID())
	m.Enable()

	display := WrapValue(m, func() *layout.Pane {
		p, _ := ws.DisplayBuffer("*Messages*", "messages-buffer-mode")
		return p
	})
	p := display()
	if p == nil || p.Name != "*Messages*" || ws.Active() != p {
		t.Fatalf("unexpected pane %+v", p)
	}
	if p.Width() != 98 {
		t.Errorf("displayed pane width = %d, expected 98", p.Width())
	}

	m.Disable()
	if l, c := ws.Subscribers(); l != 0 || c != 0 {
		t.Errorf("disable left %d/%d subscriptions", l, c)
	}
}

func TestWithUserConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GoldenRatio.ExcludedNames = []string{"*Help*"}
	cfg.GoldenRatio.ExtraCommands = []string{"ace-window"}
	cfg.GoldenRatio.AdjustFactor = 0.5
	off := false
	cfg.GoldenRatio.Recenter = &off

	ws, _, _ := twoColumns(t)
	m := New(ws, WithUserConfig(cfg))
	s := m.Settings()

	if _, ok := s.ExcludedNames["*Help*"]; !ok {
		t.Error("excluded name not applied")
	}
	if _, ok := s.ExtraCommands["ace-window"]; !ok || len(s.ExtraCommands) != 1 {
		t.Errorf("extra commands = %v", s.ExtraCommands)
	}
	if s.AdjustFactor != 0.5 || s.Recenter {
		t.Errorf("factor %v recenter %v", s.AdjustFactor, s.Recenter)
	}
	if out := m.Orchestrator().Run(); out.Target.Width != 49 {
		t.Errorf("target width = %d, expected 49", out.Target.Width)
	}
}

func TestWithSettingsIsLive(t *testing.T) {
	s := mode.DefaultSettings()
	ws, left, _ := twoColumns(t)
	m := New(ws, WithSettings(s), WithExcludedNames("ignored"))
	if m.Settings() != s {
		t.Fatal("WithSettings should be used as is")
	}
	if _, ok := s.ExcludedNames["ignored"]; ok {
		t.Error("other options should not touch the supplied settings")
	}

	s.ExcludeNames(left.Name)
	ws.Focus(left.ID())
	if last := m.Orchestrator().Run(); last.Decision.Reason != policy.ReasonExcludedName {
		t.Errorf("change to supplied settings not seen: %+v", last.Decision)
	}

	delete(s.ExcludedNames, left.Name)
	if last := m.Orchestrator().Run(); !last.Decision.Fire || left.Width() != 98 {
		t.Errorf("run after removing exclusion = %+v, width %d", last.Decision, left.Width())
	}
}

func TestFromUserConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GoldenRatio.ExcludedModes = []string{"help-mode"}
	cfg.GoldenRatio.ExtraCommands = nil

	s := FromUserConfig(cfg)
	if _, ok := s.ExcludedModes["help-mode"]; !ok {
		t.Error("excluded mode not applied")
	}
	if _, ok := s.ExtraCommands[layout.CmdWindmoveLeft]; !ok {
		t.Errorf("nil extra commands should keep the defaults, got %v", s.ExtraCommands)
	}
	if s.AdjustFactor != 1 {
		t.Errorf("factor = %v", s.AdjustFactor)
	}

	if FromUserConfig(nil).AdjustFactor != 1 {
		t.Error("nil config should give the defaults")
	}
}

func TestDefaultOptions(t *testing.T) {
	ws, _, _ := twoColumns(t)
	s := New(ws).Settings()

	if s.AdjustFactor != 1 || !s.Recenter {
		t.Errorf("unexpected defaults %+v", s)
	}
	for _, id := range []CommandID{"windmove-left", "select-window"} {
		if _, ok := s.ExtraCommands[id]; !ok {
			t.Errorf("missing default extra command %s", id)
		}
	}

	s = New(ws, WithExtraCommands()).Settings()
	if len(s.ExtraCommands) != 0 {
		t.Errorf("WithExtraCommands() should clear the set, got %v", s.ExtraCommands)
	}
}
