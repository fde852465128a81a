// Package theme provides color themes and styling for panes and the status bar.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q, using default", themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Names returns the IDs of every built-in theme.
func Names() []string {
	tint.NewDefaultRegistry()
	return tint.TintIDs()
}

// BorderUnfocused returns the color for unfocused pane borders.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("8")
	}
	return t.BrightBlack
}

// BorderFocused returns the color for the focused pane border while
// golden-ratio mode is on.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#E6B422") // gold
	}
	return t.Yellow
}

// BorderFocusedManual returns the focused pane border color while the mode is off.
func BorderFocusedManual() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// BorderExcluded returns the focused pane border color when the resize was suppressed.
func BorderExcluded() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	return t.Red
}

// PaneText returns the foreground color for pane content.
func PaneText() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// StatusBg returns the background color for the status bar.
func StatusBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// StatusFg returns the foreground color for the status bar.
func StatusFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// StatusAccent returns the accent color for the status bar mode pill.
func StatusAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#E6B422")
	}
	return t.BrightYellow
}

// MinibufferFg returns the foreground color of the command input line.
func MinibufferFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// LogViewerError returns the color for error entries in the log viewer.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning entries in the log viewer.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info entries in the log viewer.
func LogViewerInfo() color.Color {
	return lipgloss.Color("14")
}

// HelpKeyBadge returns the color for key badges in help overlay.
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5")
}

// HelpBorder returns the border color for overlays.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Palette returns the 16 ANSI colors of the current theme, or the xterm
// defaults when theming is off.
func Palette() [16]color.Color {
	t := Current()
	if t == nil {
		return [16]color.Color{
			lipgloss.Color("#000000"), lipgloss.Color("#cd0000"), lipgloss.Color("#00cd00"), lipgloss.Color("#cdcd00"),
			lipgloss.Color("#0000ee"), lipgloss.Color("#cd00cd"), lipgloss.Color("#00cdcd"), lipgloss.Color("#e5e5e5"),
			lipgloss.Color("#7f7f7f"), lipgloss.Color("#ff0000"), lipgloss.Color("#00ff00"), lipgloss.Color("#ffff00"),
			lipgloss.Color("#5c5cff"), lipgloss.Color("#ff00ff"), lipgloss.Color("#00ffff"), lipgloss.Color("#ffffff"),
		}
	}
	return [16]color.Color{
		t.Black, t.Red, t.Green, t.Yellow, t.Blue, t.Purple, t.Cyan, t.White,
		t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow,
		t.BrightBlue, t.BrightPurple, t.BrightCyan, t.BrightWhite,
	}
}
