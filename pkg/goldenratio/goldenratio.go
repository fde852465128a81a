// Package goldenratio resizes the focused pane of a tiled layout so its size
// approaches the golden ratio of the display, shrinking sibling panes to
// make room.
//
// The embedder supplies a Host: the layout service that enumerates panes,
// reports geometry, performs constrained resizes and delivers events.
//
// # Basic Usage
//
//	mode := goldenratio.New(host)
//	mode.Enable()
//	defer mode.Disable()
//
// While enabled, a resize runs on every layout change, after any command in
// the extra-command set, and after wrapped navigation commands:
//
//	otherWindow := mode.Wrap(func() { ws.OtherWindow(1) })
//	displayBuffer := goldenratio.WrapValue(mode, func() error {
//		_, err := ws.DisplayBuffer("*Help*", "help-mode")
//		return err
//	})
//
// # Custom Configuration
//
//	mode := goldenratio.New(host,
//		goldenratio.WithExcludedModes("calendar-mode"),
//		goldenratio.WithExcludedNames("*Ediff Control Panel*"),
//		goldenratio.WithInhibit(func() bool { return zoomed }),
//	)
package goldenratio

import (
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/mode"
	"github.com/charmbracelet/log"
)

// Host is the layout service the core drives.
type Host = host.Service

// Region is one pane of the layout.
type Region = host.Region

// Axis selects rows or columns.
type Axis = host.Axis

// Axis constants
const (
	// Vertical resizes height.
	Vertical = host.Vertical
	// Horizontal resizes width.
	Horizontal = host.Horizontal
)

// CommandID identifies a host command.
type CommandID = host.CommandID

// Command is an executed command, possibly composite.
type Command = host.Command

// Predicate is an inhibit hook.
type Predicate = host.Predicate

// Unsubscribe disposes an event subscription.
type Unsubscribe = host.Unsubscribe

// Settings is the live configuration of a Mode.
type Settings = mode.Settings

// Mode is the golden-ratio lifecycle object.
type Mode = mode.Mode

// Outcome reports what one resize invocation did.
type Outcome = mode.Outcome

// Options configures a Mode.
type Options struct {
	// ExcludedModes suppress resizing when the active pane's content type
	// is a member.
	ExcludedModes []string

	// ExcludedNames suppress resizing when the active pane's content
	// identifier is a member.
	ExcludedNames []string

	// ExcludedPatterns are globs matched against the content identifier.
	ExcludedPatterns []string

	// Inhibit suppresses resizing when non-empty and every predicate
	// returns true.
	Inhibit []Predicate

	// ExtraCommands force a resize after they run. Nil keeps the defaults.
	ExtraCommands []CommandID

	// AdjustFactor scales the target. 1 is the plain golden ratio.
	AdjustFactor float64

	// Recenter re-centers the active pane after a resize.
	Recenter bool

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger

	// Settings, when set, is used as is and the fields above other than
	// Logger are ignored.
	Settings *Settings
}

// Option is a functional option for configuring a Mode.
type Option func(*Options)

// WithExcludedModes adds excluded content types.
func WithExcludedModes(modes ...string) Option {
	return func(o *Options) {
		o.ExcludedModes = append(o.ExcludedModes, modes...)
	}
}

// WithExcludedNames adds excluded content identifiers.
func WithExcludedNames(names ...string) Option {
	return func(o *Options) {
		o.ExcludedNames = append(o.ExcludedNames, names...)
	}
}

// WithExcludedPatterns adds excluded identifier globs.
func WithExcludedPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.ExcludedPatterns = append(o.ExcludedPatterns, patterns...)
	}
}

// WithInhibit adds inhibit predicates.
func WithInhibit(preds ...Predicate) Option {
	return func(o *Options) {
		o.Inhibit = append(o.Inhibit, preds...)
	}
}

// WithExtraCommands replaces the extra trigger commands.
func WithExtraCommands(ids ...CommandID) Option {
	return func(o *Options) {
		o.ExtraCommands = append([]CommandID{}, ids...)
	}
}

// WithAdjustFactor sets the target scale factor. Non-positive values are
// ignored.
func WithAdjustFactor(f float64) Option {
	return func(o *Options) {
		if f > 0 {
			o.AdjustFactor = f
		}
	}
}

// WithRecenter enables or disables recentering after a resize.
func WithRecenter(enabled bool) Option {
	return func(o *Options) {
		o.Recenter = enabled
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithSettings makes the Mode use s directly. The embedder may keep
// mutating s between invocations and the Mode sees the changes.
func WithSettings(s *Settings) Option {
	return func(o *Options) {
		o.Settings = s
	}
}

// WithUserConfig applies the [golden_ratio] section of a user config file.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		if cfg == nil {
			return
		}
		gr := cfg.GoldenRatio
		o.ExcludedModes = append(o.ExcludedModes, gr.ExcludedModes...)
		o.ExcludedNames = append(o.ExcludedNames, gr.ExcludedNames...)
		o.ExcludedPatterns = append(o.ExcludedPatterns, gr.ExcludedPatterns...)
		if gr.ExtraCommands != nil {
			o.ExtraCommands = make([]CommandID, len(gr.ExtraCommands))
			for i, c := range gr.ExtraCommands {
				o.ExtraCommands[i] = CommandID(c)
			}
		}
		if gr.AdjustFactor > 0 {
			o.AdjustFactor = gr.AdjustFactor
		}
		if gr.Recenter != nil {
			o.Recenter = *gr.Recenter
		}
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		AdjustFactor: 1,
		Recenter:     true,
	}
}

// New creates a disabled Mode over h.
func New(h Host, opts ...Option) *Mode {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	settings := options.Settings
	if settings == nil {
		settings = settingsFrom(options)
	}
	return mode.New(h, settings, options.Logger)
}

// FromUserConfig builds Settings from the defaults and the [golden_ratio]
// section of cfg, for use with WithSettings.
func FromUserConfig(cfg *config.UserConfig) *Settings {
	options := DefaultOptions()
	WithUserConfig(cfg)(&options)
	return settingsFrom(options)
}

// WrapValue decorates a navigation command with a result so that a resize
// runs after it while m is enabled. The result is returned unchanged.
func WrapValue[T any](m *Mode, fn func() T) func() T {
	return mode.WrapValue(m, fn)
}

func settingsFrom(o Options) *Settings {
	s := &Settings{
		AdjustFactor: o.AdjustFactor,
		Recenter:     o.Recenter,
	}
	s.ExcludeModes(o.ExcludedModes...)
	s.ExcludeNames(o.ExcludedNames...)
	s.ExcludePatterns(o.ExcludedPatterns...)
	s.AddInhibit(o.Inhibit...)
	if o.ExtraCommands == nil {
		s.AddExtraCommands(mode.DefaultExtraCommands...)
	} else {
		s.AddExtraCommands(o.ExtraCommands...)
	}
	return s
}
