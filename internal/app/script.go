package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
)

// Step is one executed script command.
type Step struct {
	Line    int
	Command host.Command
	Err     error
}

// ParseScript reads a command script. Each line holds commands separated by
// commas or semicolons; a command of several space-separated words becomes a
// composite whose elements are those words, the way a prefixed key sequence
// is reported. Blank lines and lines starting with # are skipped.
func ParseScript(src string) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(strings.NewReader(src))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for field := range strings.FieldsFuncSeq(line, func(r rune) bool { return r == ',' || r == ';' }) {
			words := strings.Fields(field)
			switch len(words) {
			case 0:
				continue
			case 1:
				steps = append(steps, Step{Line: n, Command: host.NewCommand(host.CommandID(words[0]))})
			default:
				parts := make([]host.CommandID, len(words))
				for i, w := range words {
					parts[i] = host.CommandID(w)
				}
				steps = append(steps, Step{
					Line:    n,
					Command: host.Composite(host.CommandID(strings.Join(words, " ")), parts...),
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

// RunScript executes steps on ws in order. Failed commands are recorded and
// the script carries on.
func RunScript(ws *layout.Workspace, steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.Err = ws.Execute(s.Command)
		out[i] = s
	}
	return out
}
