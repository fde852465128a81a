package app

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
	"github.com/Gaurav-Gosain/goldenratio/internal/policy"
	"github.com/Gaurav-Gosain/goldenratio/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

var baseBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000"))

func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// paneTitle returns "n name [mode]" for the nth pane, shortened to fit within
// maxWidth. It returns "" when nothing useful fits.
func paneTitle(n int, p *layout.Pane, maxWidth int) string {
	title := fmt.Sprintf("%d %s", n, p.Name)
	if p.Mode != "" {
		title += " [" + p.Mode + "]"
	}
	// pills and padding
	maxLen := maxWidth - 4
	if maxLen < 4 {
		return ""
	}
	return ansi.Truncate(title, maxLen, "…")
}

// renderTitleBadge renders a top border line of the given inner width with
// a title badge on the left.
func renderTitleBadge(title string, width int, c color.Color) string {
	border := getBorder()
	borderStyle := lipgloss.NewStyle().Foreground(c)
	if title == "" {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, width) + border.TopRight)
	}

	pillLeft, pillRight := config.GetPills()
	badge := borderStyle.Render(pillLeft) +
		baseBadgeStyle.Background(c).Render(" "+title+" ") +
		borderStyle.Render(pillRight)

	padding := width - lipgloss.Width(badge)
	if padding < 0 {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, width) + border.TopRight)
	}
	return borderStyle.Render(border.TopLeft) +
		badge +
		borderStyle.Render(strings.Repeat(border.Top, padding)+border.TopRight)
}

// addToBorder puts a title border on top of a box rendered without one.
func addToBorder(content string, c color.Color, title string) string {
	width := max(lipgloss.Width(content)-2, 0)
	return renderTitleBadge(title, width, c) + "\n" + content
}

// visibleLines returns the part of the pane's text that fits inside its
// border, shifted by the horizontal scroll.
func visibleLines(p *layout.Pane, width, height int, focused bool) string {
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.PaneText())

	lines := make([]string, 0, height)
	for i := p.ScrollTop; i < len(p.Lines) && len(lines) < height; i++ {
		line := ansi.Truncate(ansi.TruncateLeft(p.Lines[i], p.HScroll, ""), width, "")
		if focused && i == p.Cursor {
			line = cursorStyle.Render(line + strings.Repeat(" ", max(width-ansi.StringWidth(line), 0)))
		} else {
			line = textStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// isExclusion reports whether r comes from the user's exclusion settings
// rather than the layout.
func isExclusion(r policy.Reason) bool {
	switch r {
	case policy.ReasonExcludedMode, policy.ReasonExcludedName,
		policy.ReasonExcludedPattern, policy.ReasonInhibited:
		return true
	}
	return false
}

// borderColor picks the border color for p.
func (m *OS) borderColor(p *layout.Pane) color.Color {
	if p != m.Workspace.Active() {
		return theme.BorderUnfocused()
	}
	if !m.GoldenRatio.Enabled() {
		return theme.BorderFocusedManual()
	}
	if isExclusion(m.GoldenRatio.Orchestrator().Last().Decision.Reason) {
		return theme.BorderExcluded()
	}
	return theme.BorderFocused()
}
