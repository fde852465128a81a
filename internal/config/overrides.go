package config

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/theme"
	"github.com/charmbracelet/log"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ThemeName is the theme to load
	ThemeName string

	// BorderStyle overrides the pane border style
	BorderStyle string

	// MinPaneWidth overrides the minimum pane width (0 means use config)
	MinPaneWidth int

	// MinPaneHeight overrides the minimum pane height (0 means use config)
	MinPaneHeight int

	// AdjustFactor overrides golden_ratio.adjust_factor (0 means use config)
	AdjustFactor float64

	// Disabled starts with golden-ratio mode off
	Disabled bool

	// NoRecenter disables recentering after a resize
	NoRecenter bool

	// ExcludedModes are appended to golden_ratio.excluded_modes
	ExcludedModes []string

	// ExcludedNames are appended to golden_ratio.excluded_names
	ExcludedNames []string

	// Debug forces the debug log level
	Debug bool
}

// ApplyOverrides applies CLI flag overrides to the config and to the global
// runtime settings. If userConfig is nil, the defaults are used as the base.
// The returned config is the one that should be used from here on.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) *UserConfig {
	if userConfig == nil {
		userConfig = DefaultConfig()
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		userConfig.Appearance.BorderStyle = overrides.BorderStyle
	}
	BorderStyle = userConfig.Appearance.BorderStyle

	if overrides.MinPaneWidth > 0 {
		userConfig.Appearance.MinPaneWidth = overrides.MinPaneWidth
	}
	if userConfig.Appearance.MinPaneWidth > 0 {
		MinPaneWidth = userConfig.Appearance.MinPaneWidth
	}
	if overrides.MinPaneHeight > 0 {
		userConfig.Appearance.MinPaneHeight = overrides.MinPaneHeight
	}
	if userConfig.Appearance.MinPaneHeight > 0 {
		MinPaneHeight = userConfig.Appearance.MinPaneHeight
	}

	// Adjust factor - clamp to the valid range like the config validator
	if overrides.AdjustFactor > 0 {
		f := overrides.AdjustFactor
		if f < MinAdjustFactor {
			f = MinAdjustFactor
		} else if f > MaxAdjustFactor {
			f = MaxAdjustFactor
		}
		userConfig.GoldenRatio.AdjustFactor = f
	}

	if overrides.Disabled {
		off := false
		userConfig.GoldenRatio.Enabled = &off
	}
	if overrides.NoRecenter {
		off := false
		userConfig.GoldenRatio.Recenter = &off
	}
	userConfig.GoldenRatio.ExcludedModes = append(userConfig.GoldenRatio.ExcludedModes, overrides.ExcludedModes...)
	userConfig.GoldenRatio.ExcludedNames = append(userConfig.GoldenRatio.ExcludedNames, overrides.ExcludedNames...)

	// Leader Key - only from user config
	if userConfig.Keybindings.LeaderKey != "" {
		LeaderKey = userConfig.Keybindings.LeaderKey
	}

	if overrides.Debug {
		userConfig.Log.Level = "debug"
	}
	if userConfig.Log.Level != "" {
		LogLevel = userConfig.Log.Level
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		userConfig.Appearance.Theme = themeName
		if err := theme.Initialize(themeName); err != nil {
			log.Warn("failed to load theme", "theme", themeName, "err", err)
		}
	}

	return userConfig
}

// IsEnabled reports whether golden-ratio mode should start enabled.
func (c *UserConfig) IsEnabled() bool {
	return c.GoldenRatio.Enabled == nil || *c.GoldenRatio.Enabled
}
