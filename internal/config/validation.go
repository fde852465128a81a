package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
)

// ValidationIssue is one problem found in a config file.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects errors (fatal) and warnings (reported only).
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any fatal issue was found.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether any warning was found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) errorf(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

var validBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "ascii"}

// ValidateConfig checks a filled config for invalid values.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	res := &ValidationResult{}

	gr := cfg.GoldenRatio
	if gr.AdjustFactor < MinAdjustFactor || gr.AdjustFactor > MaxAdjustFactor {
		res.errorf("golden_ratio", "adjust_factor", "must be between %.1f and %.3f, got %v",
			MinAdjustFactor, MaxAdjustFactor, gr.AdjustFactor)
	}
	for _, p := range gr.ExcludedPatterns {
		if !doublestar.ValidatePattern(p) {
			res.errorf("golden_ratio", "excluded_patterns", "invalid glob %q", p)
		}
	}
	for _, c := range gr.ExtraCommands {
		if strings.TrimSpace(c) == "" {
			res.warnf("golden_ratio", "extra_commands", "empty command name is ignored")
		}
	}

	if !slices.Contains(validBorderStyles, cfg.Appearance.BorderStyle) {
		res.errorf("appearance", "border_style", "unknown style %q (valid: %s)",
			cfg.Appearance.BorderStyle, strings.Join(validBorderStyles, ", "))
	}
	if cfg.Appearance.MinPaneWidth < 2 {
		res.warnf("appearance", "min_pane_width", "values below 2 leave no room for borders")
	}
	if cfg.Appearance.MinPaneHeight < 2 {
		res.warnf("appearance", "min_pane_height", "values below 2 leave no room for borders")
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		res.errorf("log", "level", "unknown level %q", cfg.Log.Level)
	}

	validateKeybinds(res, "keybindings.prefix", cfg.Keybindings.Prefix)
	validateKeybinds(res, "keybindings.direct", cfg.Keybindings.Direct)
	return res
}

func validateKeybinds(res *ValidationResult, field string, section map[string][]string) {
	seen := make(map[string]string)
	actions := make([]string, 0, len(section))
	for action := range section {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		if !IsKnownAction(action) {
			res.warnf(field, action, "unknown action")
			continue
		}
		for _, key := range section[action] {
			key = NormalizeKey(key)
			if prev, ok := seen[key]; ok {
				res.errorf(field, action, "key %q already bound to %s", key, prev)
				continue
			}
			seen[key] = action
		}
	}
}
