package core

import "log/slog"

// Defaults used by DefaultConfig.
const (
	DefaultName                 = "Anonymous"
	DefaultMaxListeners         = 50
	DefaultLeakWarningThreshold = 500
)

// Config holds the tunable knobs of a Bus. Start from DefaultConfig and
// override; the zero value is not meaningful.
type Config struct {
	// Name identifies the bus in logs, errors, and metrics.
	Name string

	// AllowUnhandledEvents suppresses the failure normally produced when an
	// emitted event reaches no listener anywhere in the delegation graph.
	AllowUnhandledEvents bool

	// MaxListeners is the per-event listener count above which registration
	// logs an informational diagnostic. It is never enforced.
	MaxListeners int

	// PotentialMemoryLeakWarningThreshold is the per-event listener count
	// above which registration warns about a possible listener leak.
	PotentialMemoryLeakWarningThreshold int
}

// DefaultConfig returns the built-in configuration: anonymous name,
// unhandled events allowed, soft limits of 50 and 500 listeners per event.
func DefaultConfig() Config {
	return Config{
		Name:                                DefaultName,
		AllowUnhandledEvents:                true,
		MaxListeners:                        DefaultMaxListeners,
		PotentialMemoryLeakWarningThreshold: DefaultLeakWarningThreshold,
	}
}

// Option customizes a Bus at construction time.
type Option func(*settings)

type settings struct {
	cfg       Config
	logger    *slog.Logger
	collector Collector
}

func defaultSettings() settings {
	return settings{
		cfg:       DefaultConfig(),
		collector: NoopCollector{},
	}
}

// WithConfig replaces the whole configuration. Apply it before knob-level
// options when combining.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithName sets the bus name used in diagnostics.
func WithName(name string) Option {
	return func(s *settings) { s.cfg.Name = name }
}

// WithAllowUnhandledEvents toggles the unhandled-event failure.
func WithAllowUnhandledEvents(allow bool) Option {
	return func(s *settings) { s.cfg.AllowUnhandledEvents = allow }
}

// WithMaxListeners sets the per-event count above which registration logs an
// informational diagnostic.
func WithMaxListeners(n int) Option {
	return func(s *settings) { s.cfg.MaxListeners = n }
}

// WithLeakWarningThreshold sets the per-event count above which registration
// warns about a possible listener leak.
func WithLeakWarningThreshold(n int) Option {
	return func(s *settings) { s.cfg.PotentialMemoryLeakWarningThreshold = n }
}

// WithLogger sets the structured logger. When unset, the bus resolves
// slog.Default at each call so late logger configuration is honored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithCollector attaches a metrics collector. See the metrics package for a
// Prometheus-backed implementation.
func WithCollector(c Collector) Option {
	return func(s *settings) {
		if c != nil {
			s.collector = c
		}
	}
}
