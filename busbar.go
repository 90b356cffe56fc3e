// Package busbar provides an in-process publish/subscribe bus with a
// lifecycle state machine, delegation between buses, and listener health
// diagnostics. It re-exports core types for convenience, so users can write:
//
//	b := busbar.New(busbar.WithName("orders"))
//	off := b.On("order.created", func(payload any) { ... })
//	handled, err := b.Emit("order.created", order)
//	off()
package busbar

import (
	"github.com/busworks/busbar/config"
	"github.com/busworks/busbar/core"
)

// Re-export core types at the package level for ergonomic usage.
type (
	Bus          = core.Bus
	Config       = core.Config
	Option       = core.Option
	Handler      = core.Handler
	EventHandler = core.EventHandler
	Unsubscribe  = core.Unsubscribe
	Signal       = core.Signal
	Collector    = core.Collector
	Stats        = core.Stats
)

// Reserved subscription names.
const (
	Every = core.Every
	Proxy = core.Proxy
)

// Lifecycle signals.
const (
	SignalWillActivate       = core.SignalWillActivate
	SignalActive             = core.SignalActive
	SignalWillIdle           = core.SignalWillIdle
	SignalIdle               = core.SignalIdle
	SignalWillAddListener    = core.SignalWillAddListener
	SignalDidAddListener     = core.SignalDidAddListener
	SignalWillRemoveListener = core.SignalWillRemoveListener
	SignalDidRemoveListener  = core.SignalDidRemoveListener
)

// Errors.
var (
	ErrReservedEvent  = core.ErrReservedEvent
	ErrUnhandledEvent = core.ErrUnhandledEvent
)

// Options.
var (
	WithConfig               = core.WithConfig
	WithName                 = core.WithName
	WithAllowUnhandledEvents = core.WithAllowUnhandledEvents
	WithMaxListeners         = core.WithMaxListeners
	WithLeakWarningThreshold = core.WithLeakWarningThreshold
	WithLogger               = core.WithLogger
	WithCollector            = core.WithCollector
)

// New creates a Bus seeded from the process-wide defaults held by the
// config package, with opts applied on top. The defaults are read once,
// here; changing them later never affects buses that already exist.
func New(opts ...Option) *Bus {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithConfig(config.Default()))
	all = append(all, opts...)
	return core.New(all...)
}

// Typed adapts a strongly typed handler to Handler. See core.Typed.
func Typed[T any](h func(T)) Handler {
	return core.Typed[T](h)
}

// TypedEvent adapts a strongly typed handler to EventHandler. See
// core.TypedEvent.
func TypedEvent[T any](h func(event string, v T)) EventHandler {
	return core.TypedEvent[T](h)
}
