package config

import (
	"slices"
	"strings"
)

// Actions bindable in [keybindings].
const (
	ActionSplitVertical     = "split_vertical"
	ActionSplitHorizontal   = "split_horizontal"
	ActionClosePane         = "close_pane"
	ActionOtherWindow       = "other_window"
	ActionPrevWindow        = "prev_window"
	ActionSelectWindow      = "select_window"
	ActionDisplayBuffer     = "display_buffer"
	ActionWindmoveLeft      = "windmove_left"
	ActionWindmoveRight     = "windmove_right"
	ActionWindmoveUp        = "windmove_up"
	ActionWindmoveDown      = "windmove_down"
	ActionToggleGoldenRatio = "toggle_golden_ratio"
	ActionGoldenRatio       = "golden_ratio"
	ActionToggleMinibuffer  = "toggle_minibuffer"
	ActionToggleLogs        = "toggle_logs"
	ActionToggleHelp        = "toggle_help"
	ActionQuit              = "quit"
)

var actionDescriptions = map[string]string{
	ActionSplitVertical:     "Split side by side",
	ActionSplitHorizontal:   "Split stacked",
	ActionClosePane:         "Close pane",
	ActionOtherWindow:       "Next pane",
	ActionPrevWindow:        "Previous pane",
	ActionSelectWindow:      "Select pane by number",
	ActionDisplayBuffer:     "Display a help buffer",
	ActionWindmoveLeft:      "Move focus left",
	ActionWindmoveRight:     "Move focus right",
	ActionWindmoveUp:        "Move focus up",
	ActionWindmoveDown:      "Move focus down",
	ActionToggleGoldenRatio: "Toggle golden-ratio mode",
	ActionGoldenRatio:       "Resize focused pane now",
	ActionToggleMinibuffer:  "Toggle command input",
	ActionToggleLogs:        "Toggle log viewer",
	ActionToggleHelp:        "Toggle help",
	ActionQuit:              "Quit",
}

// IsKnownAction reports whether action can be bound.
func IsKnownAction(action string) bool {
	_, ok := actionDescriptions[action]
	return ok
}

// ActionDescription returns the help text for action.
func ActionDescription(action string) string {
	return actionDescriptions[action]
}

// NormalizeKey lower-cases modifier names and orders them canonically so
// "Shift+Ctrl+X" and "ctrl+shift+X" compare equal. Single character keys
// keep their case.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	parts := strings.Split(key, "+")
	if len(parts) == 1 || key == "+" {
		if len([]rune(key)) == 1 {
			return key
		}
		return strings.ToLower(key)
	}

	last := parts[len(parts)-1]
	if len([]rune(last)) > 1 {
		last = strings.ToLower(last)
	}
	mods := make([]string, 0, len(parts)-1)
	for _, m := range parts[:len(parts)-1] {
		m = strings.ToLower(strings.TrimSpace(m))
		switch m {
		case "opt", "option", "meta":
			m = "alt"
		case "control":
			m = "ctrl"
		}
		mods = append(mods, m)
	}
	slices.SortFunc(mods, func(a, b string) int { return modifierRank(a) - modifierRank(b) })
	return strings.Join(append(mods, last), "+")
}

func modifierRank(m string) int {
	switch m {
	case "ctrl":
		return 0
	case "alt":
		return 1
	case "shift":
		return 2
	case "super":
		return 3
	default:
		return 4
	}
}

// KeybindRegistry resolves keys to actions.
type KeybindRegistry struct {
	leader string
	prefix map[string]string
	direct map[string]string
	keys   map[string][]string
}

// NewKeybindRegistry builds a registry from cfg. A nil cfg uses the defaults.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		leader: NormalizeKey(cfg.Keybindings.LeaderKey),
		prefix: make(map[string]string),
		direct: make(map[string]string),
		keys:   make(map[string][]string),
	}
	if r.leader == "" {
		r.leader = NormalizeKey(LeaderKey)
	}
	register(r, r.prefix, cfg.Keybindings.Prefix)
	register(r, r.direct, cfg.Keybindings.Direct)
	return r
}

func register(r *KeybindRegistry, dst map[string]string, section map[string][]string) {
	for action, keys := range section {
		for _, k := range keys {
			k = NormalizeKey(k)
			dst[k] = action
			r.keys[action] = append(r.keys[action], k)
		}
	}
}

// Leader returns the normalized leader key.
func (r *KeybindRegistry) Leader() string {
	return r.leader
}

// IsLeader reports whether key is the leader key.
func (r *KeybindRegistry) IsLeader(key string) bool {
	return NormalizeKey(key) == r.leader
}

// PrefixAction returns the action bound to key after the leader, or "".
func (r *KeybindRegistry) PrefixAction(key string) string {
	return r.prefix[NormalizeKey(key)]
}

// DirectAction returns the action bound to key without the leader, or "".
func (r *KeybindRegistry) DirectAction(key string) string {
	return r.direct[NormalizeKey(key)]
}

// GetKeysForDisplay returns the keys for action joined for display.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := slices.Clone(r.keys[action])
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns all keybinding sections for the help overlay.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}

	panes := KeybindingSection{Title: "PANES (after " + registry.Leader() + ")"}
	for _, action := range []string{
		ActionSplitVertical, ActionSplitHorizontal, ActionClosePane,
		ActionOtherWindow, ActionPrevWindow, ActionSelectWindow, ActionDisplayBuffer,
	} {
		addBinding(&panes, registry, action)
	}

	golden := KeybindingSection{Title: "GOLDEN RATIO (after " + registry.Leader() + ")"}
	for _, action := range []string{
		ActionToggleGoldenRatio, ActionGoldenRatio, ActionToggleMinibuffer,
	} {
		addBinding(&golden, registry, action)
	}

	nav := KeybindingSection{Title: "NAVIGATION"}
	for _, action := range []string{
		ActionWindmoveLeft, ActionWindmoveRight, ActionWindmoveUp, ActionWindmoveDown,
	} {
		addBinding(&nav, registry, action)
	}

	system := KeybindingSection{Title: "SYSTEM (after " + registry.Leader() + ")"}
	for _, action := range []string{ActionToggleLogs, ActionToggleHelp, ActionQuit} {
		addBinding(&system, registry, action)
	}

	sections := []KeybindingSection{}
	for _, s := range []KeybindingSection{panes, golden, nav, system} {
		if len(s.Bindings) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescription(action),
	})
}
