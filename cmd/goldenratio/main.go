// Package main implements goldenratio, a terminal pane manager that keeps
// the focused pane at golden-ratio proportions.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode     bool
	configPath    string
	themeName     string
	listThemes    bool
	previewTheme  string
	borderStyle   string
	adjustFactor  float64
	noRecenter    bool
	disabled      bool
	excludeModes  []string
	excludeNames  []string
	minPaneWidth  int
	minPaneHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goldenratio",
		Short: "Golden-ratio pane manager",
		Long: `goldenratio - golden-ratio pane manager

Split the terminal into panes and let the focused pane grow to golden-ratio
proportions whenever focus moves. Panes can be excluded by content type,
name or glob pattern.`,
		Example: `  # Run goldenratio
  goldenratio

  # Start with the mode off and a smaller target
  goldenratio --disabled --adjust-factor 0.8

  # Never resize help panes
  goldenratio --exclude-mode help-mode

  # Replay commands without a UI
  goldenratio simulate "split-window-right, other-window"

  # Edit configuration
  goldenratio config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(stdout(), previewTheme)
			}
			if listThemes {
				return printThemes(os.Stdout)
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: $XDG_CONFIG_HOME/goldenratio/config.toml)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Pane border style: rounded, normal, thick, double, hidden, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().Float64Var(&adjustFactor, "adjust-factor", 0, "Scale applied to the golden-ratio target, 0.1 to 1.618 (default: from config or 1.0)")
	rootCmd.PersistentFlags().BoolVar(&noRecenter, "no-recenter", false, "Do not re-center the focused pane after resizing")
	rootCmd.PersistentFlags().BoolVar(&disabled, "disabled", false, "Start with golden-ratio mode off")
	rootCmd.PersistentFlags().StringSliceVar(&excludeModes, "exclude-mode", nil, "Content type that is never resized (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&excludeNames, "exclude-name", nil, "Pane name that is never resized (repeatable)")
	rootCmd.PersistentFlags().IntVar(&minPaneWidth, "min-width", 0, "Minimum pane width in columns (default: from config or 10)")
	rootCmd.PersistentFlags().IntVar(&minPaneHeight, "min-height", 0, "Minimum pane height in rows (default: from config or 4)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage goldenratio configuration",
		Long:  `Manage the goldenratio configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the goldenratio configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath(os.Stdout)
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults and command-line flags are applied`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig(os.Stdout)
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the goldenratio configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the goldenratio configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(os.Stdin, os.Stdout, resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Do not ask for confirmation")

	configCmd.AddCommand(configPathCmd, configShowCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "List keybindings",
		Long:    `Display all configured keybindings`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings(stdout())
		},
	}

	var simWidth, simHeight int
	var simFile string
	var simRender bool
	simulateCmd := &cobra.Command{
		Use:   "simulate [commands]",
		Short: "Run pane commands without a UI",
		Long: `Run a script of pane commands against a virtual workspace and print
the resulting layout.

Commands are separated by commas, semicolons or newlines. A command of
several words is run the way a prefixed key sequence is, e.g.
"ctrl+b windmove-left".`,
		Example: `  goldenratio simulate "split-window-right, other-window"
  goldenratio simulate --width 200 --height 60 --file layout.txt
  goldenratio simulate --render "split-window-below, split-window-right"`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(stdout(), simulateOptions{
				width:  simWidth,
				height: simHeight,
				file:   simFile,
				render: simRender,
				args:   args,
			})
		},
	}
	simulateCmd.Flags().IntVar(&simWidth, "width", 0, "Terminal width (default: current terminal or 160)")
	simulateCmd.Flags().IntVar(&simHeight, "height", 0, "Terminal height (default: current terminal or 50)")
	simulateCmd.Flags().StringVarP(&simFile, "file", "f", "", "Read commands from a file")
	simulateCmd.Flags().BoolVar(&simRender, "render", false, "Draw the final layout")

	rootCmd.AddCommand(configCmd, keybindsCmd, simulateCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
