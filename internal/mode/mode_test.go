package mode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
	"github.com/Gaurav-Gosain/goldenratio/internal/policy"
	"github.com/Gaurav-Gosain/goldenratio/internal/testutil"
	"github.com/charmbracelet/log"
)

func sideBySide() (*testutil.FakeHost, *testutil.FakeRegion) {
	left := &testutil.FakeRegion{Name: "left", Mode: "text-mode", W: 80, H: 48, FullH: true, HScroll: 7}
	right := &testutil.FakeRegion{Name: "right", Mode: "text-mode", W: 80, H: 48, FullH: true}
	return testutil.NewFakeHost(48, 160, left, right), left
}

func TestGoldenRatioResizesAndFollowsUp(t *testing.T) {
	h, left := sideBySide()
	o := NewOrchestrator(h, nil, nil)

	out := o.Run()

	if !out.Decision.Fire {
		t.Fatalf("expected resize to fire, suppressed by %s", out.Decision.Reason)
	}
	if out.Target.Height != 29 || out.Target.Width != 98 {
		t.Errorf("target = %+v, want 29x98", out.Target)
	}
	if left.W != 98 {
		t.Errorf("width = %d, want 98", left.W)
	}
	if left.HScroll != 0 {
		t.Errorf("expected horizontal scroll reset, got %d", left.HScroll)
	}
	if left.Recentered != 1 {
		t.Errorf("expected one recenter, got %d", left.Recentered)
	}
}

func TestGoldenRatioRecenterDisabled(t *testing.T) {
	h, left := sideBySide()
	s := DefaultSettings()
	s.Recenter = false

	NewOrchestrator(h, s, nil).GoldenRatio()

	if left.Recentered != 0 {
		t.Errorf("expected no recenter, got %d", left.Recentered)
	}
	if left.HScroll != 0 {
		t.Error("horizontal scroll is always reset")
	}
}

func TestGoldenRatioSuppressed(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(h *testutil.FakeHost, s *Settings)
		reason policy.Reason
	}{
		{"single region", func(h *testutil.FakeHost, _ *Settings) { h.List = h.List[:1] }, policy.ReasonSingleRegion},
		{"excluded mode", func(_ *testutil.FakeHost, s *Settings) { s.ExcludeModes("text-mode") }, policy.ReasonExcludedMode},
		{"minibuffer", func(h *testutil.FakeHost, _ *Settings) { h.Minibuffer = true }, policy.ReasonMinibuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, left := sideBySide()
			s := DefaultSettings()
			tt.setup(h, s)

			out := NewOrchestrator(h, s, nil).Run()

			if out.Decision.Fire || out.Decision.Reason != tt.reason {
				t.Errorf("decision = %+v, want suppressed by %s", out.Decision, tt.reason)
			}
			if len(h.Calls) != 0 {
				t.Errorf("expected no resize calls, got %v", h.Calls)
			}
			if left.HScroll != 7 || left.Recentered != 0 {
				t.Error("cosmetic follow-up ran for a suppressed resize")
			}
		})
	}
}

// The averaged baselines alone do not converge: every forced rerun on a
// real split adds the same delta. Only the settled check keeps repeated
// triggers from growing the pane.
func TestUnsettleRepeatsDelta(t *testing.T) {
	ws := layout.NewWorkspace(160, 48, layout.WithMinSize(4, 2))
	left := ws.Active()
	if _, err := ws.SplitActive(layout.SplitColumns, "right", "text-mode"); err != nil {
		t.Fatal(err)
	}
	ws.Focus(left.ID())
	o := NewOrchestrator(ws, nil, nil)

	first := o.Run().Result
	if first.Cols != 18 || left.Width() != 98 {
		t.Fatalf("first run = %+v, width %d", first, left.Width())
	}

	if out := o.Run(); out.Decision.Reason != policy.ReasonSettled || left.Width() != 98 {
		t.Errorf("rerun on an unchanged layout = %+v, width %d", out.Decision, left.Width())
	}

	o.Unsettle()
	second := o.Run().Result
	if second.Cols != first.Cols {
		t.Errorf("forced rerun delta = %d, want %d", second.Cols, first.Cols)
	}
	if left.Width() != 116 {
		t.Errorf("width after forced rerun = %d, want 116", left.Width())
	}
}

func TestGoldenRatioSettled(t *testing.T) {
	h, left := sideBySide()
	o := NewOrchestrator(h, nil, nil)

	o.Run()
	h.ResetCalls()
	out := o.Run()

	if out.Decision.Fire || out.Decision.Reason != policy.ReasonSettled {
		t.Errorf("decision = %+v, want settled", out.Decision)
	}
	if len(h.Calls) != 0 {
		t.Errorf("settled layout was resized: %v", h.Calls)
	}

	// Any geometry change makes the layout eligible again
	left.W = 70
	if out := o.Run(); !out.Decision.Fire {
		t.Errorf("expected resize after geometry change, got %s", out.Decision.Reason)
	}

	// So does a different adjust factor
	o.Settings().AdjustFactor = 0.9
	if out := o.Run(); !out.Decision.Fire {
		t.Errorf("expected resize after factor change, got %s", out.Decision.Reason)
	}
}

func TestGoldenRatioAdjustFactor(t *testing.T) {
	h, _ := sideBySide()
	s := DefaultSettings()
	s.AdjustFactor = 0.5

	out := NewOrchestrator(h, s, nil).Run()
	if out.Target.Width != 49 {
		t.Errorf("target width = %d, want 49", out.Target.Width)
	}

	s.AdjustFactor = 0
	if got := NewOrchestrator(h, s, nil).Run().Target.Width; got != 98 {
		t.Errorf("non-positive factor should fall back to 1, got width %d", got)
	}
}

func TestGoldenRatioNestedCallDropped(t *testing.T) {
	h, _ := sideBySide()
	o := NewOrchestrator(h, nil, nil)

	var nested Outcome
	h.Feasible = func(host.Region, host.Axis, int) bool {
		if nested == (Outcome{}) {
			nested = o.Run()
		}
		return true
	}

	o.Run()

	if !nested.Nested {
		t.Error("expected nested invocation to be dropped")
	}
	if o.Runs() != 1 {
		t.Errorf("Runs() = %d, want 1", o.Runs())
	}
}

func TestGoldenRatioLogsSuppression(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h, _ := sideBySide()
	h.Minibuffer = true

	NewOrchestrator(h, nil, logger).GoldenRatio()

	if !strings.Contains(buf.String(), "minibuffer focused") {
		t.Errorf("expected suppression reason in log, got %q", buf.String())
	}
}

func TestModeLifecycle(t *testing.T) {
	h, _ := sideBySide()
	m := New(h, nil, nil)

	if m.Enabled() {
		t.Fatal("new mode should start disabled")
	}

	m.Enable()
	m.Enable()
	if h.Subscribers() != 2 {
		t.Errorf("expected 2 subscriptions after enable, got %d", h.Subscribers())
	}

	m.Disable()
	m.Disable()
	if m.Enabled() || h.Subscribers() != 0 {
		t.Errorf("expected all subscriptions disposed, got %d", h.Subscribers())
	}

	if !m.Toggle() || m.Toggle() {
		t.Error("Toggle should report the new state")
	}
}

func TestModeLayoutChangeTriggers(t *testing.T) {
	h, _ := sideBySide()
	m := New(h, nil, nil)
	m.Enable()

	h.EmitLayoutChange()
	if m.Orchestrator().Runs() != 1 {
		t.Errorf("expected one run, got %d", m.Orchestrator().Runs())
	}

	m.Disable()
	h.EmitLayoutChange()
	if m.Orchestrator().Runs() != 1 {
		t.Error("disabled mode still reacted to layout change")
	}
}

func TestModeLayoutChangeExcludedModeNeverResizes(t *testing.T) {
	h, left := sideBySide()
	s := DefaultSettings()
	s.ExcludeModes("text-mode")
	m := New(h, s, nil)
	m.Enable()

	h.EmitLayoutChange()

	if len(h.Calls) != 0 || left.W != 80 {
		t.Errorf("excluded region was resized: calls %v", h.Calls)
	}
}

func TestModePostCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  host.Command
		want int
	}{
		{"extra command", host.NewCommand("windmove-left"), 1},
		{"plain command", host.NewCommand("forward-char"), 0},
		{"composite containing extra command", host.Composite("prefix-dispatch", "ctrl+x", "select-window"), 1},
		{"composite without extra command", host.Composite("prefix-dispatch", "ctrl+x", "save-buffer"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := sideBySide()
			m := New(h, nil, nil)
			m.Enable()

			h.EmitPostCommand(tt.cmd)

			if got := m.Orchestrator().Runs(); got != tt.want {
				t.Errorf("runs = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestModeRemoveExtraCommand(t *testing.T) {
	h, _ := sideBySide()
	m := New(h, nil, nil)
	m.Enable()
	m.Settings().RemoveExtraCommands("windmove-left")

	h.EmitPostCommand(host.NewCommand("windmove-left"))

	if m.Orchestrator().Runs() != 0 {
		t.Error("removed extra command still triggered a resize")
	}
}

func TestWrap(t *testing.T) {
	h, _ := sideBySide()
	m := New(h, nil, nil)

	calls := 0
	other := m.Wrap(func() { calls++ })

	other()
	if calls != 1 || m.Orchestrator().Runs() != 0 {
		t.Errorf("disabled wrap: calls=%d runs=%d", calls, m.Orchestrator().Runs())
	}

	m.Enable()
	other()
	if calls != 2 || m.Orchestrator().Runs() != 1 {
		t.Errorf("enabled wrap: calls=%d runs=%d", calls, m.Orchestrator().Runs())
	}
}

func TestWrapValuePreservesResult(t *testing.T) {
	h, _ := sideBySide()
	m := New(h, nil, nil)
	m.Enable()

	var ranBefore bool
	display := WrapValue(m, func() string {
		ranBefore = m.Orchestrator().Runs() == 0
		return "*help*"
	})

	if got := display(); got != "*help*" {
		t.Errorf("result = %q, want *help*", got)
	}
	if !ranBefore {
		t.Error("resize ran before the wrapped command")
	}
	if m.Orchestrator().Runs() != 1 {
		t.Errorf("expected one run after wrapped call, got %d", m.Orchestrator().Runs())
	}
}
