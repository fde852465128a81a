package app

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
	"github.com/Gaurav-Gosain/goldenratio/pkg/goldenratio"
)

// Commands added on top of the workspace built-ins.
const (
	CmdGoldenRatio     host.CommandID = "golden-ratio"
	CmdGoldenRatioMode host.CommandID = "golden-ratio-mode"
	CmdQuit            host.CommandID = "quit"
)

// Bind installs the golden-ratio commands on ws and replaces the
// pane-cycling and display-buffer commands with wrapped versions that
// resize after they run while m is enabled.
func Bind(ws *layout.Workspace, m *goldenratio.Mode) {
	next := m.Wrap(func() { ws.OtherWindow(1) })
	prev := m.Wrap(func() { ws.OtherWindow(-1) })
	ws.Define(layout.CmdOtherWindow, func() error { next(); return nil })
	ws.Define(layout.CmdPreviousWindow, func() error { prev(); return nil })

	if display, ok := ws.Lookup(layout.CmdDisplayBuffer); ok {
		ws.Define(layout.CmdDisplayBuffer, goldenratio.WrapValue(m, display))
	}

	ws.Define(CmdGoldenRatio, func() error { m.GoldenRatio(); return nil })
	ws.Define(CmdGoldenRatioMode, func() error { m.Toggle(); return nil })
}
