package app

import (
	"testing"

	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
)

func TestParseScript(t *testing.T) {
	src := `
# build a layout
split-window-right, split-window-below
ctrl+b windmove-left; other-window

`
	steps, err := ParseScript(src)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		line  int
		id    host.CommandID
		parts int
	}{
		{3, layout.CmdSplitRight, 0},
		{3, layout.CmdSplitBelow, 0},
		{4, "ctrl+b windmove-left", 2},
		{4, layout.CmdOtherWindow, 0},
	}
	if len(steps) != len(want) {
		t.Fatalf("parsed %d steps, expected %d", len(steps), len(want))
	}
	for i, w := range want {
		s := steps[i]
		if s.Line != w.line || s.Command.ID != w.id || len(s.Command.Parts) != w.parts {
			t.Errorf("step %d = %+v", i, s)
		}
	}
	if steps[2].Command.Parts[1] != layout.CmdWindmoveLeft {
		t.Errorf("composite parts = %v", steps[2].Command.Parts)
	}
}

func TestRunScript(t *testing.T) {
	ws := layout.NewWorkspace(120, 40, layout.WithMinSize(4, 2))
	steps, _ := ParseScript("split-window-right, no-such-command, select-window-1")

	out := RunScript(ws, steps)
	if out[0].Err != nil || out[2].Err != nil {
		t.Errorf("unexpected errors: %v %v", out[0].Err, out[2].Err)
	}
	if out[1].Err == nil {
		t.Error("unknown command should fail")
	}
	if len(ws.Panes()) != 2 || ws.Active() != ws.Panes()[0] {
		t.Error("script did not run to the end")
	}
}
