package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/policy"
	"github.com/Gaurav-Gosain/goldenratio/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

func (m *OS) renderOverlays() []*lipgloss.Layer {
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderStatusBar()).
			X(0).Y(m.Height - config.StatusBarHeight - config.MinibufferHeight).
			Z(config.ZIndexStatus).ID("status"),
		lipgloss.NewLayer(m.renderMinibuffer()).
			X(0).Y(m.Height - config.MinibufferHeight).
			Z(config.ZIndexStatus).ID("minibuffer"),
	}

	if m.ShowHelp {
		help := m.RenderHelpMenu()
		layers = append(layers, lipgloss.NewLayer(lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center, help)).
			X(0).Y(0).Z(config.ZIndexHelp).ID("help"))
	}

	if m.ShowLogs {
		layers = append(layers, lipgloss.NewLayer(lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center, m.renderLogViewer())).
			X(0).Y(0).Z(config.ZIndexLogs).ID("logs"))
	}

	layers = append(layers, m.renderNotifications()...)
	return layers
}

// StatusText describes the mode state and what the last run did.
func (m *OS) StatusText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "golden-ratio %s", onOff(m.GoldenRatio.Enabled()))

	last := m.GoldenRatio.Orchestrator().Last()
	switch {
	case m.GoldenRatio.Orchestrator().Runs() == 0:
	case last.Nested:
		b.WriteString(" | nested call dropped")
	case last.Decision.Fire:
		fmt.Fprintf(&b, " | target %dx%d", last.Target.Width, last.Target.Height)
		if last.Result.ColsApplied {
			fmt.Fprintf(&b, " %+d cols", last.Result.Cols)
		}
		if last.Result.RowsApplied {
			fmt.Fprintf(&b, " %+d rows", last.Result.Rows)
		}
	case last.Decision.Reason != policy.ReasonNone:
		b.WriteString(" | " + last.Decision.Reason.String())
		if last.Decision.Subject != "" {
			b.WriteString(" " + last.Decision.Subject)
		}
	}
	return b.String()
}

func (m *OS) renderStatusBar() string {
	bar := lipgloss.NewStyle().Background(theme.StatusBg()).Foreground(theme.StatusFg())

	pill := lipgloss.NewStyle().
		Background(theme.StatusAccent()).
		Foreground(lipgloss.Color("#000000")).
		Bold(true).
		Padding(0, 1)
	left := ""
	if m.PrefixActive {
		left = pill.Render("PREFIX")
	}

	active := m.Workspace.Active()
	right := fmt.Sprintf(" %s %dx%d | %d panes ", active.Name, active.Width(), active.Height(), len(m.Workspace.Panes()))
	middle := " " + m.StatusText()

	room := m.Width - lipgloss.Width(left) - ansi.StringWidth(right)
	middle = ansi.Truncate(middle, max(room, 0), "…")
	gap := max(room-ansi.StringWidth(middle), 0)
	line := left + bar.Render(middle+strings.Repeat(" ", gap)+right)
	return ansi.Truncate(line, m.Width, "")
}

func (m *OS) renderMinibuffer() string {
	style := lipgloss.NewStyle().Foreground(theme.MinibufferFg()).Width(m.Width)
	if m.MinibufferActive() {
		return style.Render(ansi.Truncate("M-x "+m.MinibufferInput+"_", m.Width, ""))
	}
	hint := fmt.Sprintf("%s %s for help", m.KeybindRegistry.Leader(), m.KeybindRegistry.GetKeysForDisplay(config.ActionToggleHelp))
	return style.Faint(true).Render(ansi.Truncate(hint, m.Width, ""))
}

// RenderHelpMenu renders the keybinding overview.
func (m *OS) RenderHelpMenu() string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Bold(true)
	titleStyle := lipgloss.NewStyle().Bold(true).Underline(true)

	sections := config.GetKeybindings(m.KeybindRegistry)
	keyWidth := 0
	for _, s := range sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Key))
		}
	}

	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(s.Title))
		for _, b := range s.Bindings {
			key := b.Key + strings.Repeat(" ", keyWidth-ansi.StringWidth(b.Key))
			lines = append(lines, keyStyle.Render(key)+"  "+b.Description)
		}
	}
	lines = append(lines, "", lipgloss.NewStyle().Faint(true).Render("Press '?'/'esc' to close"))

	return lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m *OS) renderLogViewer() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Render("Logs")

	perPage := m.logsPerPage()
	m.LogScrollOffset = max(0, min(m.LogScrollOffset, m.maxLogScroll()))

	lines := []string{title, ""}
	shown := 0
	for i := m.LogScrollOffset; i < len(m.LogMessages) && shown < perPage; i++ {
		msg := m.LogMessages[i]
		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}
		level := lipgloss.NewStyle().Foreground(levelColor).Render(fmt.Sprintf("[%s]", msg.Level))
		line := fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), level, msg.Message)
		lines = append(lines, ansi.Truncate(line, config.LogViewerWidth-6, "…"))
		shown++
	}

	lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("8")).
		Render(fmt.Sprintf("%d-%d of %d, j/k to scroll, esc to close",
			min(m.LogScrollOffset+1, len(m.LogMessages)), m.LogScrollOffset+shown, len(m.LogMessages))))

	return lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2).
		Width(config.LogViewerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m *OS) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	start := max(len(m.Notifications)-config.MaxVisibleNotifications, 0)
	y := 1
	for _, n := range m.Notifications[start:] {
		bg := theme.LogViewerInfo()
		switch n.Type {
		case "error":
			bg = theme.LogViewerError()
		case "warning":
			bg = theme.LogViewerWarn()
		}
		text := lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Render(ansi.Truncate(n.Message, max(m.Width/2, 10), "…"))
		layers = append(layers, lipgloss.NewLayer(text).
			X(max(m.Width-lipgloss.Width(text)-2, 0)).Y(y).
			Z(config.ZIndexNotifications).ID(n.ID))
		y += lipgloss.Height(text) + 1
	}
	return layers
}
