package core

import "time"

// Collector receives bus activity for metrics backends. Implementations
// must be safe for concurrent use. The interface keeps the core decoupled
// from any specific metrics library.
type Collector interface {
	// EventDispatched records a completed Emit. handled reports whether any
	// listener observed the event; d is the total synchronous dispatch time
	// including delegates.
	EventDispatched(bus, event string, handled bool, d time.Duration)

	// ListenerAdded records a listener registration. count is the listener
	// count for event on this bus after the addition.
	ListenerAdded(bus, event string, count int)

	// ListenerRemoved records a listener removal. count is the listener
	// count remaining for event on this bus.
	ListenerRemoved(bus, event string, count int)
}

// NoopCollector discards every observation. It is the default collector.
type NoopCollector struct{}

func (NoopCollector) EventDispatched(string, string, bool, time.Duration) {}
func (NoopCollector) ListenerAdded(string, string, int)                   {}
func (NoopCollector) ListenerRemoved(string, string, int)                 {}

// Stats is a point-in-time snapshot of bus activity counters.
type Stats struct {
	// EventsEmitted counts Emit calls that passed the reserved-name guard.
	EventsEmitted uint64

	// EventsHandled counts emissions observed by at least one listener,
	// own or delegated.
	EventsHandled uint64

	// EventsUnhandled counts emissions no listener observed.
	EventsUnhandled uint64

	// ListenersAdded and ListenersRemoved count registrations and removals
	// on this bus over its lifetime.
	ListenersAdded   uint64
	ListenersRemoved uint64

	// Listeners is the current number of listeners registered directly on
	// this bus. Delegates is the current number of piped buses.
	Listeners int
	Delegates int
}
