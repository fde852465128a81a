package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// configRelPath is the config file location relative to XDG_CONFIG_HOME.
const configRelPath = "goldenratio/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	GoldenRatio GoldenRatioConfig `toml:"golden_ratio"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Log         LogConfig         `toml:"log"`
}

// GoldenRatioConfig holds the resize policy
type GoldenRatioConfig struct {
	Enabled          *bool    `toml:"enabled"`           // Enable golden-ratio mode at startup (default: true)
	ExcludedModes    []string `toml:"excluded_modes"`    // Content types that are never resized
	ExcludedNames    []string `toml:"excluded_names"`    // Pane names that are never resized
	ExcludedPatterns []string `toml:"excluded_patterns"` // Glob patterns over pane names that are never resized
	ExtraCommands    []string `toml:"extra_commands"`    // Commands that force a resize after they run
	AdjustFactor     float64  `toml:"adjust_factor"`     // Scale applied to the golden-ratio target (default: 1.0)
	Recenter         *bool    `toml:"recenter"`          // Re-center the focused pane after resizing (default: true)
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme         string `toml:"theme"`           // Color theme name (e.g., dracula, nord). Empty uses terminal colors.
	BorderStyle   string `toml:"border_style"`    // Border style: rounded, normal, thick, double, hidden, ascii
	MinPaneWidth  int    `toml:"min_pane_width"`  // Minimum pane width in columns (default: 10)
	MinPaneHeight int    `toml:"min_pane_height"` // Minimum pane height in rows (default: 4)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	LeaderKey string              `toml:"leader_key"` // Leader key for prefix commands (default: ctrl+b)
	Prefix    map[string][]string `toml:"prefix"`     // Actions reachable after the leader key
	Direct    map[string][]string `toml:"direct"`     // Actions bound without the leader key
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error (default: info)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	enabled, recenter := true, true
	return &UserConfig{
		GoldenRatio: GoldenRatioConfig{
			Enabled:       &enabled,
			ExcludedModes: []string{},
			ExcludedNames: []string{},
			ExtraCommands: []string{
				"windmove-left",
				"windmove-right",
				"windmove-up",
				"windmove-down",
				"select-window",
			},
			AdjustFactor: DefaultAdjustFactor,
			Recenter:     &recenter,
		},
		Appearance: AppearanceConfig{
			BorderStyle:   "rounded",
			MinPaneWidth:  DefaultMinPaneWidth,
			MinPaneHeight: DefaultMinPaneHeight,
		},
		Keybindings: KeybindingsConfig{
			LeaderKey: "ctrl+b",
			Prefix: map[string][]string{
				ActionSplitVertical:     {"|", "\\"},
				ActionSplitHorizontal:   {"-"},
				ActionClosePane:         {"x"},
				ActionOtherWindow:       {"o", "tab"},
				ActionPrevWindow:        {"shift+tab"},
				ActionDisplayBuffer:     {"b"},
				ActionSelectWindow:      {"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
				ActionToggleGoldenRatio: {"g"},
				ActionGoldenRatio:       {"G"},
				ActionToggleMinibuffer:  {":"},
				ActionToggleLogs:        {"L"},
				ActionToggleHelp:        {"?"},
				ActionQuit:              {"q"},
			},
			Direct: map[string][]string{
				ActionWindmoveLeft:  {"alt+h", "alt+left"},
				ActionWindmoveRight: {"alt+l", "alt+right"},
				ActionWindmoveUp:    {"alt+k", "alt+up"},
				ActionWindmoveDown:  {"alt+j", "alt+down"},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	if path, err := xdg.SearchConfigFile(configRelPath); err == nil {
		return path, nil
	}
	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Config doesn't exist, create default
		path, err := xdg.ConfigFile(configRelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		cfg := DefaultConfig()
		if err := WriteConfigFile(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads, fills and validates the config at path.
func LoadConfigFile(path string) (*UserConfig, error) {
	// #nosec G304 - path is from XDG search or an explicit flag, reading user config is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingGoldenRatio(&cfg, defaultCfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", e.Field, e.Key, e.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	for _, w := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", w.Field, w.Key, w.Message)
	}

	return &cfg, nil
}

// WriteConfigFile writes cfg to path with a commented header, creating
// parent directories as needed.
func WriteConfigFile(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# goldenratio configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("# For keybindings, run: goldenratio keybinds\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# GOLDEN RATIO\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# excluded_modes / excluded_names: panes whose content type or name is listed\n")
	sb.WriteString("#   are never resized when focused.\n")
	sb.WriteString("# excluded_patterns: glob patterns (e.g. \"*Help*\") matched against pane names.\n")
	sb.WriteString("# extra_commands: commands that force a resize after they run, including\n")
	sb.WriteString("#   when they appear inside a prefixed key sequence.\n")
	sb.WriteString("# adjust_factor: scale applied to the target size\n")
	sb.WriteString("#   Range: 0.1 to 1.618\n")
	sb.WriteString("#   Default: 1.0\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingGoldenRatio fills in any missing golden-ratio settings with defaults
func fillMissingGoldenRatio(cfg, defaultCfg *UserConfig) {
	gr := &cfg.GoldenRatio
	if gr.Enabled == nil {
		gr.Enabled = defaultCfg.GoldenRatio.Enabled
	}
	if gr.Recenter == nil {
		gr.Recenter = defaultCfg.GoldenRatio.Recenter
	}
	// An explicit empty list disables the defaults; only an absent key falls back
	if gr.ExtraCommands == nil {
		gr.ExtraCommands = defaultCfg.GoldenRatio.ExtraCommands
	}
	if gr.AdjustFactor == 0 {
		gr.AdjustFactor = defaultCfg.GoldenRatio.AdjustFactor
	}
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.MinPaneWidth <= 0 {
		cfg.Appearance.MinPaneWidth = defaultCfg.Appearance.MinPaneWidth
	}
	if cfg.Appearance.MinPaneHeight <= 0 {
		cfg.Appearance.MinPaneHeight = defaultCfg.Appearance.MinPaneHeight
	}
}

// fillMissingKeybinds fills in unbound actions with their defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	kb := &cfg.Keybindings
	if kb.LeaderKey == "" {
		kb.LeaderKey = defaultCfg.Keybindings.LeaderKey
	}
	kb.Prefix = fillSection(kb.Prefix, defaultCfg.Keybindings.Prefix)
	kb.Direct = fillSection(kb.Direct, defaultCfg.Keybindings.Direct)
}

func fillSection(section, defaults map[string][]string) map[string][]string {
	if section == nil {
		section = make(map[string][]string, len(defaults))
	}
	for action, keys := range defaults {
		if _, ok := section[action]; !ok {
			section[action] = keys
		}
	}
	return section
}
