package testutil_test

import (
	"testing"

	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/testutil"
)

// =============================================================================
// FakeHost Tests
// =============================================================================

func TestFakeHost_ResizeAppliesDelta(t *testing.T) {
	r := &testutil.FakeRegion{Name: "a", W: 40, H: 20}
	h := testutil.NewFakeHost(20, 80, r)

	h.Resize(r, host.Vertical, -3)
	h.Resize(r, host.Horizontal, 5)

	if r.H != 17 || r.W != 45 {
		t.Errorf("expected 45x17, got %dx%d", r.W, r.H)
	}
	if len(h.Calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(h.Calls))
	}
}

func TestFakeHost_InfeasibleResizeIsNoop(t *testing.T) {
	r := &testutil.FakeRegion{Name: "a", W: 40, H: 20}
	h := testutil.NewFakeHost(20, 80, r)
	h.Feasible = func(host.Region, host.Axis, int) bool { return false }

	h.Resize(r, host.Vertical, 3)

	if r.H != 20 {
		t.Errorf("expected height unchanged, got %d", r.H)
	}
	if len(h.Calls) != 0 {
		t.Errorf("expected no recorded calls, got %v", h.Calls)
	}
}

func TestFakeHost_Subscriptions(t *testing.T) {
	h := testutil.NewFakeHost(20, 80, &testutil.FakeRegion{Name: "a"})

	layouts, commands := 0, 0
	unLayout := h.OnLayoutChange(func() { layouts++ })
	unCmd := h.OnPostCommand(func(host.Command) { commands++ })

	h.EmitLayoutChange()
	h.EmitPostCommand(host.NewCommand("forward-char"))
	if layouts != 1 || commands != 1 {
		t.Fatalf("expected one delivery each, got layouts=%d commands=%d", layouts, commands)
	}

	unLayout()
	unCmd()
	unCmd()
	if h.Subscribers() != 0 {
		t.Errorf("expected no subscribers, got %d", h.Subscribers())
	}

	h.EmitLayoutChange()
	if layouts != 1 {
		t.Error("unsubscribed callback still ran")
	}
}
