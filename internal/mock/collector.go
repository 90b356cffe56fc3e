package mock

import (
	"sync"
	"time"
)

// Collector is a test double for core.Collector. It records every
// observation for assertions.
type Collector struct {
	mu         sync.Mutex
	dispatches []Dispatch
	added      []ListenerChange
	removed    []ListenerChange
}

// Dispatch records one EventDispatched observation.
type Dispatch struct {
	Bus     string
	Event   string
	Handled bool
	Elapsed time.Duration
}

// ListenerChange records a ListenerAdded or ListenerRemoved observation.
type ListenerChange struct {
	Bus   string
	Event string
	Count int
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) EventDispatched(bus, event string, handled bool, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatches = append(c.dispatches, Dispatch{Bus: bus, Event: event, Handled: handled, Elapsed: d})
}

func (c *Collector) ListenerAdded(bus, event string, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.added = append(c.added, ListenerChange{Bus: bus, Event: event, Count: count})
}

func (c *Collector) ListenerRemoved(bus, event string, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed = append(c.removed, ListenerChange{Bus: bus, Event: event, Count: count})
}

// Dispatches returns a copy of the recorded dispatch observations.
func (c *Collector) Dispatches() []Dispatch {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Dispatch, len(c.dispatches))
	copy(out, c.dispatches)
	return out
}

// Added returns a copy of the recorded listener additions.
func (c *Collector) Added() []ListenerChange {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ListenerChange, len(c.added))
	copy(out, c.added)
	return out
}

// Removed returns a copy of the recorded listener removals.
func (c *Collector) Removed() []ListenerChange {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ListenerChange, len(c.removed))
	copy(out, c.removed)
	return out
}
