package mode

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/policy"
)

// DefaultExtraCommands are focus-moving commands that do not emit a
// layout-change event on their own.
var DefaultExtraCommands = []host.CommandID{
	"windmove-left",
	"windmove-right",
	"windmove-up",
	"windmove-down",
	"select-window",
}

// Settings is the process-wide configuration. It is read, never written,
// during an invocation; the embedder may change it between invocations.
type Settings struct {
	policy.Rules

	// ExtraCommands force a resize when executed, directly or as an element
	// of a composite command.
	ExtraCommands map[host.CommandID]struct{}

	// AdjustFactor scales the golden-ratio target. 1 is the plain ratio.
	AdjustFactor float64

	// Recenter re-centers the active region around its cursor after a resize.
	Recenter bool
}

// DefaultSettings returns settings with the default extra commands, a
// factor of 1 and recentering on.
func DefaultSettings() *Settings {
	s := &Settings{
		AdjustFactor: 1,
		Recenter:     true,
	}
	s.AddExtraCommands(DefaultExtraCommands...)
	return s
}

// ExcludeModes adds content types to the excluded set.
func (s *Settings) ExcludeModes(modes ...string) {
	s.ExcludedModes = addAll(s.ExcludedModes, modes)
}

// ExcludeNames adds content identifiers to the excluded set.
func (s *Settings) ExcludeNames(names ...string) {
	s.ExcludedNames = addAll(s.ExcludedNames, names)
}

// ExcludePatterns appends glob patterns matched against content identifiers.
func (s *Settings) ExcludePatterns(patterns ...string) {
	s.ExcludedPatterns = append(s.ExcludedPatterns, patterns...)
}

// AddInhibit appends an inhibit predicate.
func (s *Settings) AddInhibit(preds ...host.Predicate) {
	s.Inhibit = append(s.Inhibit, preds...)
}

// AddExtraCommands adds commands to the extra trigger set.
func (s *Settings) AddExtraCommands(ids ...host.CommandID) {
	if s.ExtraCommands == nil {
		s.ExtraCommands = make(map[host.CommandID]struct{}, len(ids))
	}
	for _, id := range ids {
		s.ExtraCommands[id] = struct{}{}
	}
}

// RemoveExtraCommands drops commands from the extra trigger set.
func (s *Settings) RemoveExtraCommands(ids ...host.CommandID) {
	for _, id := range ids {
		delete(s.ExtraCommands, id)
	}
}

func (s *Settings) factor() float64 {
	if s.AdjustFactor <= 0 {
		return 1
	}
	return s.AdjustFactor
}

func addAll(m map[string]struct{}, items []string) map[string]struct{} {
	if m == nil {
		m = make(map[string]struct{}, len(items))
	}
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
