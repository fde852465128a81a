package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestInitializeEmptyDisablesTheming(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if IsEnabled() || Current() != nil {
		t.Error("expected theming disabled")
	}
	if got := ColorToString(BorderFocused()); got != "#e6b422" {
		t.Errorf("expected gold fallback, got %s", got)
	}
}

func TestInitializeUnknownTheme(t *testing.T) {
	t.Cleanup(func() { _ = Initialize("") })

	if err := Initialize("definitely-not-a-theme"); err == nil {
		t.Error("expected error for unknown theme")
	}
	if !IsEnabled() {
		t.Error("an unknown theme still enables the default theme")
	}
}

func TestColorToString(t *testing.T) {
	if got := ColorToString(nil); got != "#000000" {
		t.Errorf("nil color = %s", got)
	}
	if got := ColorToString(lipgloss.Color("#a0a0a8")); got != "#a0a0a8" {
		t.Errorf("got %s", got)
	}
}

func TestPalette(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	p := Palette()
	if got := ColorToString(p[1]); got != "#cd0000" {
		t.Errorf("palette[1] = %s, want xterm red", got)
	}
	if got := ColorToString(p[15]); got != "#ffffff" {
		t.Errorf("palette[15] = %s, want white", got)
	}

	t.Cleanup(func() { _ = Initialize("") })
	if err := Initialize("default"); err != nil {
		t.Fatalf("Initialize(default) failed: %v", err)
	}
	for i, c := range Palette() {
		if c == nil {
			t.Errorf("palette[%d] is nil", i)
		}
	}
}
