package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// useConfigFile points --config at a file in a temp dir for the test.
func useConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goldenratio", "config.toml")
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })
	return path
}

func TestRunSimulate(t *testing.T) {
	useConfigFile(t)

	var buf bytes.Buffer
	err := runSimulate(&buf, simulateOptions{
		width:  160,
		height: 50,
		args:   []string{"split-window-right, other-window", "bogus-command"},
	})
	if err != nil {
		t.Fatalf("runSimulate failed: %v", err)
	}
	out := ansi.Strip(buf.String())

	for _, want := range []string{"split-window-right", "other-window", "bogus-command", "golden-ratio on"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	var active []string
	for line := range strings.SplitSeq(out, "\n") {
		if strings.HasSuffix(line, "  *") {
			active = append(active, line)
		}
	}
	if len(active) != 1 || !strings.Contains(active[0], "*scratch*") || !strings.Contains(active[0], "98x48") {
		t.Errorf("active pane lines = %q, expected *scratch* at 98x48", active)
	}
}

func TestRunSimulateFileAndRender(t *testing.T) {
	useConfigFile(t)
	script := filepath.Join(t.TempDir(), "layout.txt")
	if err := os.WriteFile(script, []byte("# stack two panes\nsplit-window-below\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runSimulate(&buf, simulateOptions{width: 80, height: 40, file: script, render: true}); err != nil {
		t.Fatalf("runSimulate failed: %v", err)
	}
	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "split-window-below") {
		t.Errorf("step from file not run:\n%s", out)
	}
	if !strings.Contains(out, "1 *scratch*") || !strings.Contains(out, "2 *pane-2*") {
		t.Errorf("rendered canvas missing pane titles:\n%s", out)
	}
}

func TestRunSimulateMissingFile(t *testing.T) {
	useConfigFile(t)
	err := runSimulate(&bytes.Buffer{}, simulateOptions{width: 80, height: 24, file: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Error("expected error for missing script")
	}
}

func TestConfigResetAndShow(t *testing.T) {
	path := useConfigFile(t)

	var out bytes.Buffer
	if err := printConfigPath(&out); err != nil || strings.TrimSpace(out.String()) != path {
		t.Fatalf("config path = %q, %v", out.String(), err)
	}

	cfg := config.DefaultConfig()
	cfg.GoldenRatio.ExcludedModes = []string{"help-mode"}
	if err := config.WriteConfigFile(path, cfg); err != nil {
		t.Fatal(err)
	}

	show := func() string {
		t.Helper()
		var buf bytes.Buffer
		if err := showConfig(&buf); err != nil {
			t.Fatalf("showConfig failed: %v", err)
		}
		return buf.String()
	}
	if got := show(); !strings.Contains(got, "help-mode") || !strings.Contains(got, "[golden_ratio]") {
		t.Errorf("show did not print the saved config:\n%s", got)
	}

	tests := []struct {
		name     string
		answer   string
		yes      bool
		wantKept bool
	}{
		{"declined", "n\n", false, true},
		{"empty answer", "\n", false, true},
		{"confirmed", "yes\n", false, false},
		{"flag", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := config.WriteConfigFile(path, cfg); err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := resetConfigToDefaults(strings.NewReader(tt.answer), &buf, tt.yes); err != nil {
				t.Fatalf("reset failed: %v", err)
			}
			if kept := strings.Contains(show(), "help-mode"); kept != tt.wantKept {
				t.Errorf("custom setting kept = %v, want %v (output %q)", kept, tt.wantKept, buf.String())
			}
		})
	}
}

func TestResetCreatesMissingConfig(t *testing.T) {
	path := useConfigFile(t)
	if err := resetConfigToDefaults(strings.NewReader(""), &bytes.Buffer{}, true); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := config.LoadConfigFile(path); err != nil {
		t.Errorf("reset wrote an unreadable config: %v", err)
	}
}

func TestListKeybindings(t *testing.T) {
	useConfigFile(t)

	var buf bytes.Buffer
	if err := listKeybindings(&buf); err != nil {
		t.Fatalf("listKeybindings failed: %v", err)
	}
	if out := ansi.Strip(buf.String()); !strings.Contains(out, "Leader key: ctrl+b") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPrintThemes(t *testing.T) {
	var buf bytes.Buffer
	if err := printThemes(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") == 0 {
		t.Error("no themes listed")
	}
}
