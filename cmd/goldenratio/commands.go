package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/theme"
	"github.com/charmbracelet/colorprofile"
	"github.com/pelletier/go-toml/v2"
)

// stdout downsamples styled output to what the terminal supports.
func stdout() *colorprofile.Writer {
	return colorprofile.NewWriter(os.Stdout, os.Environ())
}

// configFile returns the --config path, or the default location.
func configFile() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func printConfigPath(w io.Writer) error {
	path, err := configFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, path)
	return nil
}

func showConfig(w io.Writer) error {
	data, err := toml.Marshal(loadConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// findEditor returns the user's editor, or the first common one on $PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(e); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found, set $EDITOR")
}

func editConfigFile() error {
	path, err := configFile()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.WriteConfigFile(path, config.DefaultConfig()); err != nil {
			return err
		}
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}
	fields := strings.Fields(editor)
	// #nosec G204 - the editor comes from the user's own environment
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	if _, err := config.LoadConfigFile(path); err != nil {
		return fmt.Errorf("saved config is invalid: %w", err)
	}
	return nil
}

func resetConfigToDefaults(in io.Reader, w io.Writer, yes bool) error {
	path, err := configFile()
	if err != nil {
		return err
	}

	if !yes {
		fmt.Fprintf(w, "Overwrite %s with the defaults? [y/N] ", path)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := config.WriteConfigFile(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(w, "Configuration reset:", path)
	return nil
}

func listKeybindings(w io.Writer) error {
	cfg := loadConfig()
	registry := config.NewKeybindRegistry(cfg)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.StatusAccent())
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKeyBadge()).Width(24)

	fmt.Fprintf(w, "Leader key: %s\n", registry.Leader())
	for _, section := range config.GetKeybindings(registry) {
		fmt.Fprintf(w, "\n%s\n", titleStyle.Render(section.Title))
		for _, b := range section.Bindings {
			fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(b.Key), b.Description)
		}
	}
	return nil
}

func printThemes(w io.Writer) error {
	for _, name := range theme.Names() {
		fmt.Fprintln(w, name)
	}
	return nil
}

func previewThemeColors(w io.Writer, name string) error {
	if err := theme.Initialize(name); err != nil {
		return err
	}
	palette := theme.Palette()

	fmt.Fprintf(w, "%s\n\n", lipgloss.NewStyle().Bold(true).Render(name))
	for row := range 2 {
		for i := range 8 {
			c := palette[row*8+i]
			fmt.Fprint(w, lipgloss.NewStyle().Background(c).Render(fmt.Sprintf(" %2d ", row*8+i)))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	for _, s := range []struct {
		label string
		style lipgloss.Style
	}{
		{"focused", lipgloss.NewStyle().Foreground(theme.BorderFocused())},
		{"focused, mode off", lipgloss.NewStyle().Foreground(theme.BorderFocusedManual())},
		{"focused, excluded", lipgloss.NewStyle().Foreground(theme.BorderExcluded())},
		{"unfocused", lipgloss.NewStyle().Foreground(theme.BorderUnfocused())},
	} {
		fmt.Fprintf(w, "%s %s\n", s.style.Render("████"), s.label)
	}
	return nil
}
