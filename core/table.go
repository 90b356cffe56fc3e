package core

import (
	"sync"

	"github.com/google/uuid"
)

// entry is a single registered listener. All subscription forms are stored
// in this uniform shape so exact, catch-all, and proxy listeners share one
// invocation path. The id appears in debug logs.
type entry struct {
	id string
	fn func(event string, payload any)
}

func newEntry(fn func(event string, payload any)) *entry {
	return &entry{id: uuid.NewString(), fn: fn}
}

// table is the primitive event registry: event name -> ordered listeners.
// It knows nothing about lifecycle, delegation, or diagnostics; Bus layers
// those around it.
type table struct {
	mu      sync.RWMutex
	entries map[string][]*entry
}

func newTable() *table {
	return &table{entries: make(map[string][]*entry)}
}

// add appends e to the listeners for name, preserving registration order.
func (t *table) add(name string, e *entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[name] = append(t.entries[name], e)
}

// remove deletes e from the listeners for name, matching by identity, and
// reports whether it was present. A name left with no listeners is dropped
// from the table entirely.
func (t *table) remove(name string, e *entry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	list, ok := t.entries[name]
	if !ok {
		return false
	}
	for i, cand := range list {
		if cand == e {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(t.entries, name)
			} else {
				t.entries[name] = list
			}
			return true
		}
	}
	return false
}

// contains reports whether e is currently registered under name.
func (t *table) contains(name string, e *entry) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, cand := range t.entries[name] {
		if cand == e {
			return true
		}
	}
	return false
}

// count returns the number of listeners registered for name.
func (t *table) count(name string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries[name])
}

// size returns the total number of listeners across all names.
func (t *table) size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, list := range t.entries {
		n += len(list)
	}
	return n
}

// names returns the event names that currently have listeners.
func (t *table) names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.entries))
	for name := range t.entries {
		out = append(out, name)
	}
	return out
}

// snapshot copies the listeners for name so they can be invoked outside the
// lock. Listeners may therefore re-enter the table while running.
func (t *table) snapshot(name string) []*entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	list := t.entries[name]
	if len(list) == 0 {
		return nil
	}
	out := make([]*entry, len(list))
	copy(out, list)
	return out
}

// invoke calls every listener registered for name in order, passing event
// and payload. It reports whether at least one listener ran.
func (t *table) invoke(name, event string, payload any) bool {
	list := t.snapshot(name)
	for _, e := range list {
		e.fn(event, payload)
	}
	return len(list) > 0
}

// clear removes every listener.
func (t *table) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[string][]*entry)
}
