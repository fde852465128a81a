// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Pane Defaults
// =============================================================================

const (
	// DefaultMinPaneWidth is the narrowest a pane can be resized to
	DefaultMinPaneWidth = 10

	// DefaultMinPaneHeight is the shortest a pane can be resized to
	DefaultMinPaneHeight = 4

	// DefaultAdjustFactor leaves the golden-ratio target unscaled
	DefaultAdjustFactor = 1.0

	// MinAdjustFactor and MaxAdjustFactor bound adjust_factor
	MinAdjustFactor = 0.1
	MaxAdjustFactor = 1.618
)

// =============================================================================
// Timeouts and Durations
// =============================================================================

const (
	// PrefixCommandTimeout is the timeout for prefix command mode
	PrefixCommandTimeout = 2 * time.Second

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 1500 * time.Millisecond

	// TickInterval drives notification expiry and the prefix timeout
	TickInterval = 250 * time.Millisecond
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// StatusBarHeight is the height of the status bar at the bottom
	StatusBarHeight = 1

	// MinibufferHeight is the height of the command input line
	MinibufferHeight = 1

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 80

	// MaxLogMessages is the size of the in-memory log ring buffer
	MaxLogMessages = 500

	// MaxVisibleNotifications is the maximum number of notifications shown at once
	MaxVisibleNotifications = 3
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexPanes is the z-index for panes
	ZIndexPanes = 0

	// ZIndexStatus is the z-index for the status bar and minibuffer
	ZIndexStatus = 10

	// ZIndexHelp is the z-index for help overlay
	ZIndexHelp = 1000

	// ZIndexLogs is the z-index for log viewer overlay
	ZIndexLogs = 1001

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = 1002
)

// =============================================================================
// Runtime settings (set from user config and CLI overrides)
// =============================================================================

// BorderStyle is the pane border style
var BorderStyle = "rounded"

// LeaderKey is the prefix key for commands
var LeaderKey = "ctrl+b"

// MinPaneWidth is the global minimum pane width
var MinPaneWidth = DefaultMinPaneWidth

// MinPaneHeight is the global minimum pane height
var MinPaneHeight = DefaultMinPaneHeight

// LogLevel is the structured log level name
var LogLevel = "info"

// =============================================================================
// Pane decorations
// =============================================================================

const (
	// PillLeft and PillRight frame the title badge on a pane border
	PillLeft  = "▐"
	PillRight = "▌"

	// PillLeftASCII and PillRightASCII are used with the ascii border style
	PillLeftASCII  = "["
	PillRightASCII = "]"
)

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	switch BorderStyle {
	case "ascii":
		return lipgloss.ASCIIBorder()
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetPills returns the characters that frame a title badge.
func GetPills() (left, right string) {
	if BorderStyle == "ascii" {
		return PillLeftASCII, PillRightASCII
	}
	return PillLeft, PillRight
}
