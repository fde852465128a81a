// Package mode sequences golden-ratio resizes and owns the lifecycle that
// wires them to host events.
package mode

import (
	"io"
	"slices"

	"github.com/Gaurav-Gosain/goldenratio/internal/geometry"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/policy"
	"github.com/Gaurav-Gosain/goldenratio/internal/resize"
	"github.com/charmbracelet/log"
)

// Outcome is what a single invocation did.
type Outcome struct {
	Decision policy.Decision
	Target   geometry.Dimensions
	Result   resize.Result
	// Nested is set when the call arrived while another invocation was
	// still running and was dropped.
	Nested bool
}

// Orchestrator runs policy, geometry and resize for the active region.
type Orchestrator struct {
	host     host.Service
	settings *Settings
	logger   *log.Logger

	running bool
	last    Outcome
	runs    int
	settled *fingerprint
}

type regionKey struct {
	id           string
	w, h         int
	fullW, fullH bool
}

// fingerprint is the layout a resize left behind.
type fingerprint struct {
	rows, cols int
	factor     float64
	active     string
	regions    []regionKey
}

func (f *fingerprint) equal(g *fingerprint) bool {
	return f != nil && g != nil &&
		f.rows == g.rows && f.cols == g.cols && f.factor == g.factor &&
		f.active == g.active && slices.Equal(f.regions, g.regions)
}

func (o *Orchestrator) fingerprint() *fingerprint {
	rows, cols := o.host.Display()
	fp := &fingerprint{
		rows:   rows,
		cols:   cols,
		factor: o.settings.factor(),
		active: o.host.ActiveRegion().ID(),
	}
	for _, r := range o.host.Regions() {
		fp.regions = append(fp.regions, regionKey{r.ID(), r.Width(), r.Height(), r.FullWidth(), r.FullHeight()})
	}
	return fp
}

// NewOrchestrator creates an orchestrator. A nil settings uses
// DefaultSettings; a nil logger discards output.
func NewOrchestrator(svc host.Service, settings *Settings, logger *log.Logger) *Orchestrator {
	if settings == nil {
		settings = DefaultSettings()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Orchestrator{host: svc, settings: settings, logger: logger}
}

// Settings returns the live settings. Changes apply from the next invocation.
func (o *Orchestrator) Settings() *Settings {
	return o.settings
}

// GoldenRatio resizes the active region toward the golden ratio of the
// display. It never reports failure: suppression and infeasible axes are
// silent no-ops.
func (o *Orchestrator) GoldenRatio() {
	o.Run()
}

// Run is GoldenRatio returning what happened.
func (o *Orchestrator) Run() Outcome {
	// Resizing emits layout-change events; those must not start a second
	// pass while this one is in progress.
	if o.running {
		return Outcome{Nested: true}
	}
	o.running = true
	defer func() { o.running = false }()

	out := Outcome{Decision: policy.Evaluate(o.host, o.settings.Rules)}
	o.runs++
	if out.Decision.Fire && o.settled.equal(o.fingerprint()) {
		// The baselines average sibling sizes, so resizing an unchanged
		// layout again would keep growing the active region.
		out.Decision = policy.Decision{Reason: policy.ReasonSettled}
	}
	if !out.Decision.Fire {
		o.logger.Debug("resize suppressed", "reason", out.Decision.Reason, "subject", out.Decision.Subject)
		o.last = out
		return out
	}

	rows, cols := o.host.Display()
	out.Target = geometry.Target(rows, cols, o.settings.factor())

	active := o.host.ActiveRegion()
	out.Result = resize.Active(o.host, out.Target, active)

	o.host.ResetHScroll(active)
	if o.settings.Recenter {
		o.host.Recenter(active)
	}

	o.logger.Debug("resized",
		"region", active.ID(),
		"target", out.Target,
		"rows", out.Result.Rows, "rows_applied", out.Result.RowsApplied,
		"cols", out.Result.Cols, "cols_applied", out.Result.ColsApplied,
	)
	o.settled = o.fingerprint()
	o.last = out
	return out
}

// Unsettle forgets the last resized layout so the next invocation resizes
// even if nothing changed.
func (o *Orchestrator) Unsettle() {
	o.settled = nil
}

// Last returns the outcome of the most recent non-nested invocation.
func (o *Orchestrator) Last() Outcome {
	return o.last
}

// Runs returns how many non-nested invocations have happened.
func (o *Orchestrator) Runs() int {
	return o.runs
}
