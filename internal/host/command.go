package host

import "strings"

// CommandID is an opaque command identifier such as "other-window".
type CommandID string

// Command is the command a user just executed. Composite commands, such as a
// prefixed binding or a recorded sequence, list their elements in Parts.
type Command struct {
	ID    CommandID
	Parts []CommandID
}

// NewCommand builds a single, non-composite command.
func NewCommand(id CommandID) Command {
	return Command{ID: id}
}

// Composite builds a composite command named id whose elements are parts.
func Composite(id CommandID, parts ...CommandID) Command {
	return Command{ID: id, Parts: parts}
}

// Matches reports whether the command, or any of its elements, is a member
// of set.
func (c Command) Matches(set map[CommandID]struct{}) bool {
	if len(set) == 0 {
		return false
	}
	if _, ok := set[c.ID]; ok {
		return true
	}
	for _, part := range c.Parts {
		if _, ok := set[part]; ok {
			return true
		}
	}
	return false
}

// String renders the command as "id" or "id[part part ...]".
func (c Command) String() string {
	if len(c.Parts) == 0 {
		return string(c.ID)
	}
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = string(p)
	}
	return string(c.ID) + "[" + strings.Join(parts, " ") + "]"
}
