// Package policy decides whether a golden-ratio resize should fire for the
// current focus context.
package policy

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/bmatcuk/doublestar/v4"
)

// Reason names why a resize was suppressed.
type Reason int

const (
	// ReasonNone means the resize fires.
	ReasonNone Reason = iota
	// ReasonMinibuffer means focus is on the command input area.
	ReasonMinibuffer
	// ReasonSingleRegion means there is nothing to rebalance against.
	ReasonSingleRegion
	// ReasonExcludedMode means the active content type is excluded.
	ReasonExcludedMode
	// ReasonExcludedName means the active content identifier is excluded.
	ReasonExcludedName
	// ReasonExcludedPattern means the active content identifier matched an
	// excluded glob.
	ReasonExcludedPattern
	// ReasonInhibited means every inhibit predicate returned true.
	ReasonInhibited
	// ReasonSettled means nothing changed since the last resize. Evaluate
	// never returns it; the orchestrator does.
	ReasonSettled
)

var reasonNames = map[Reason]string{
	ReasonNone:            "none",
	ReasonMinibuffer:      "minibuffer focused",
	ReasonSingleRegion:    "single region",
	ReasonExcludedMode:    "excluded mode",
	ReasonExcludedName:    "excluded name",
	ReasonExcludedPattern: "excluded pattern",
	ReasonInhibited:       "inhibited",
	ReasonSettled:         "settled",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// Rules are the suppression settings. The zero value suppresses only the
// structural cases (minibuffer, single region).
type Rules struct {
	ExcludedModes    map[string]struct{}
	ExcludedNames    map[string]struct{}
	ExcludedPatterns []string
	Inhibit          []host.Predicate
}

// Decision is the outcome of Evaluate.
type Decision struct {
	Fire   bool
	Reason Reason
	// Subject is the mode or name that caused an exclusion, if any.
	Subject string
}

func suppress(reason Reason, subject string) Decision {
	return Decision{Reason: reason, Subject: subject}
}

// Evaluate checks the live host context against rules. The first matching
// suppression wins.
func Evaluate(svc host.Service, rules Rules) Decision {
	if svc.MinibufferFocused() {
		return suppress(ReasonMinibuffer, "")
	}
	if len(svc.Regions()) == 1 {
		return suppress(ReasonSingleRegion, "")
	}

	active := svc.ActiveRegion()
	mode := svc.ContentType(active)
	if _, ok := rules.ExcludedModes[mode]; ok {
		return suppress(ReasonExcludedMode, mode)
	}

	name := svc.ContentID(active)
	if _, ok := rules.ExcludedNames[name]; ok {
		return suppress(ReasonExcludedName, name)
	}
	if pattern, ok := matchPattern(rules.ExcludedPatterns, name); ok {
		return suppress(ReasonExcludedPattern, pattern)
	}

	if Inhibited(rules.Inhibit) {
		return suppress(ReasonInhibited, "")
	}
	return Decision{Fire: true}
}

// Inhibited reports whether preds is non-empty and every predicate returns
// true. Evaluation stops at the first false.
func Inhibited(preds []host.Predicate) bool {
	if len(preds) == 0 {
		return false
	}
	for _, p := range preds {
		if p == nil || !p() {
			return false
		}
	}
	return true
}

// matchPattern returns the first glob in patterns that matches name.
// Malformed patterns never match.
func matchPattern(patterns []string, name string) (string, bool) {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return p, true
		}
	}
	return "", false
}

// ValidPattern reports whether p is a well-formed exclusion glob.
func ValidPattern(p string) bool {
	return doublestar.ValidatePattern(p)
}
