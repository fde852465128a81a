package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
	"github.com/Gaurav-Gosain/goldenratio/internal/theme"
)

type simulateOptions struct {
	width, height int
	file          string
	render        bool
	args          []string
}

func runSimulate(w io.Writer, opts simulateOptions) error {
	src := strings.Join(opts.args, "\n")
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		src = string(data) + "\n" + src
	}
	steps, err := app.ParseScript(src)
	if err != nil {
		return err
	}

	width, height := terminalSize(160, 50)
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	o := app.New(loadConfig(), width, height)

	okStyle := lipgloss.NewStyle().Foreground(theme.LogViewerInfo())
	errStyle := lipgloss.NewStyle().Foreground(theme.LogViewerError())
	for _, s := range steps {
		s.Err = o.Workspace.Execute(s.Command)
		status := okStyle.Render(o.StatusText())
		if s.Err != nil {
			status = errStyle.Render(s.Err.Error())
		}
		fmt.Fprintf(w, "%3d  %-28s %s\n", s.Line, s.Command.String(), status)
	}

	fmt.Fprintln(w)
	printPanes(w, o.Workspace)

	if opts.render {
		fmt.Fprintln(w)
		fmt.Fprintln(w, o.GetCanvas(false).Render())
	}
	return nil
}

// printPanes lists every pane with its rectangle, marking the active one.
func printPanes(w io.Writer, ws *layout.Workspace) {
	active := lipgloss.NewStyle().Bold(true).Foreground(theme.BorderFocused())
	for i, p := range ws.Panes() {
		r := p.Rect()
		line := fmt.Sprintf("%d  %-24s %-22s %3dx%-3d at %d,%d", i+1, p.Name, p.Mode, r.W, r.H, r.X, r.Y)
		if p == ws.Active() {
			line = active.Render(line + "  *")
		}
		fmt.Fprintln(w, line)
	}
}
