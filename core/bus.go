package core

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Reserved subscription names. Both can be subscribed to but never emitted;
// Emit rejects them with ErrReservedEvent.
const (
	// Every is the catch-all subscription name. Listeners registered under
	// it observe every event emitted on the bus.
	Every = "*"

	// Proxy is the forwarding subscription name. Listeners registered under
	// it observe every event together with its name, which is how one bus
	// relays traffic on behalf of another.
	Proxy = "@@PROXY@@"
)

// Bus is a synchronous in-process publish/subscribe bus. It dispatches
// events to listeners in registration order, tracks its own activity
// through lifecycle signals, and can delegate events to other buses.
//
//	b := core.New(core.WithName("orders"))
//	off := b.On("order.created", func(payload any) {
//	    fmt.Println("created:", payload)
//	})
//	handled, err := b.Emit("order.created", order)
//	off()
//
// Dispatch happens on the caller's goroutine and returns only after every
// listener, own and delegated, has run. Listeners may subscribe and
// unsubscribe from inside a dispatch.
type Bus struct {
	id     string
	name   string
	cfg    Config
	logger *slog.Logger
	coll   Collector

	events    *table
	lifecycle *table

	mu        sync.Mutex // guards delegates
	delegates []*delegation

	active atomic.Bool

	emitted          atomic.Uint64
	handledCount     atomic.Uint64
	unhandledCount   atomic.Uint64
	listenersAdded   atomic.Uint64
	listenersRemoved atomic.Uint64
}

// New creates an inactive Bus with no listeners and no delegates.
func New(opts ...Option) *Bus {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Bus{
		id:        uuid.NewString(),
		name:      s.cfg.Name,
		cfg:       s.cfg,
		logger:    s.logger,
		coll:      s.collector,
		events:    newTable(),
		lifecycle: newTable(),
	}
}

// On subscribes h to a single event name. Subscribing to Every registers a
// catch-all listener; the payload is still delivered.
func (b *Bus) On(event string, h Handler) Unsubscribe {
	return b.subscribe(event, func(_ string, payload any) { h(payload) })
}

// Any subscribes one handler to several event names at once. The handler
// receives the name of the event that fired. The returned Unsubscribe
// removes every underlying registration.
func (b *Bus) Any(events []string, h EventHandler) Unsubscribe {
	offs := make([]Unsubscribe, 0, len(events))
	for _, event := range events {
		offs = append(offs, b.subscribe(event, func(event string, payload any) { h(event, payload) }))
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}

// Every subscribes h to every event emitted on the bus. The handler takes
// no arguments; use On(Every, ...) when the payload matters, or Proxy when
// the event name matters too.
func (b *Bus) Every(h func()) Unsubscribe {
	return b.subscribe(Every, func(string, any) { h() })
}

// All is an alias for Every.
func (b *Bus) All(h func()) Unsubscribe {
	return b.Every(h)
}

// Proxy subscribes h to every event emitted on the bus, delivering the
// event name alongside the payload.
func (b *Bus) Proxy(h EventHandler) Unsubscribe {
	return b.subscribe(Proxy, func(event string, payload any) { h(event, payload) })
}

// subscribe is the single registration path behind every subscription form.
// The lifecycle sequence around the table add is fixed: willActivate when
// the bus is inactive, willAddListener, the add itself, didAddListener, and
// active when the add was the first listener anywhere.
func (b *Bus) subscribe(event string, fn func(event string, payload any)) Unsubscribe {
	b.checkListenerPressure(event)
	e := newEntry(fn)
	b.emitWillAdd(event)
	b.events.add(event, e)
	b.emitDidAdd(event)
	b.listenersAdded.Add(1)
	b.coll.ListenerAdded(b.name, event, b.events.count(event))
	b.log().Debug("listener added", "event", event, "listener_id", e.id)
	return func() { b.unsubscribe(event, e) }
}

// unsubscribe removes e from event. Only the call that actually removes the
// entry emits lifecycle signals, which keeps handles idempotent and makes
// them no-ops after Destroy.
func (b *Bus) unsubscribe(event string, e *entry) {
	if !b.events.contains(event, e) {
		return
	}
	b.emitWillRemove(event)
	if !b.events.remove(event, e) {
		return
	}
	b.emitDidRemove(event)
	b.listenersRemoved.Add(1)
	b.coll.ListenerRemoved(b.name, event, b.events.count(event))
	b.log().Debug("listener removed", "event", event, "listener_id", e.id)
}

// checkListenerPressure reports soft-limit diagnostics before a registration
// on event. n counts the incoming listener. Registration always proceeds.
func (b *Bus) checkListenerPressure(event string) {
	n := b.events.count(event) + 1
	if n > b.cfg.PotentialMemoryLeakWarningThreshold {
		b.log().Warn("possible listener leak",
			"event", event,
			"count", n,
			"threshold", b.cfg.PotentialMemoryLeakWarningThreshold)
	} else if n > b.cfg.MaxListeners {
		b.log().Info("listener count above max_listeners",
			"event", event,
			"count", n,
			"max_listeners", b.cfg.MaxListeners)
	}
}

// Emit dispatches event with payload and reports whether any listener,
// own or delegated, observed it.
//
// Dispatch runs in four phases, each in registration order: listeners for
// the exact name, catch-all listeners, proxy listeners, then every delegate
// recursively in pipe order. A delegate failure aborts the remaining
// delegates and propagates. When nothing observed the event and the bus
// disallows unhandled events, Emit returns an UnhandledEventError.
//
// Listener panics are not recovered; wrap handlers with the middleware
// package where recovery is wanted.
func (b *Bus) Emit(event string, payload any) (bool, error) {
	if event == Every || event == Proxy {
		return false, &ReservedEventError{Event: event}
	}

	start := time.Now()
	b.emitted.Add(1)

	handled, err := b.dispatch(event, payload)

	if handled {
		b.handledCount.Add(1)
	} else {
		b.unhandledCount.Add(1)
	}
	b.coll.EventDispatched(b.name, event, handled, time.Since(start))

	if err != nil {
		return handled, err
	}
	if !handled && !b.cfg.AllowUnhandledEvents {
		return false, &UnhandledEventError{
			Bus:     b.name,
			Event:   event,
			Payload: serializePayload(payload),
		}
	}
	return handled, nil
}

// dispatch runs the four delivery phases and reports whether any listener
// observed the event. A delegate failure aborts the remaining delegates.
func (b *Bus) dispatch(event string, payload any) (bool, error) {
	handled := b.events.invoke(event, event, payload)
	if b.events.invoke(Every, event, payload) {
		handled = true
	}
	if b.events.invoke(Proxy, event, payload) {
		handled = true
	}
	for _, d := range b.delegateList() {
		dh, err := d.Emit(event, payload)
		handled = handled || dh
		if err != nil {
			return handled, err
		}
	}
	return handled, nil
}

// Name returns the configured bus name.
func (b *Bus) Name() string {
	return b.name
}

// ID returns the unique instance id carried in logs.
func (b *Bus) ID() string {
	return b.id
}

// Config returns the configuration the bus was constructed with.
func (b *Bus) Config() Config {
	return b.cfg
}

// Active reports whether the bus currently has listeners anywhere in its
// view, as tracked by the lifecycle state machine.
func (b *Bus) Active() bool {
	return b.active.Load()
}

// HasOwnListeners reports whether any listener is registered directly on b.
// Lifecycle hooks do not count.
func (b *Bus) HasOwnListeners() bool {
	return b.events.size() > 0
}

// HasDelegateListeners reports whether any piped bus, recursively, has
// listeners.
func (b *Bus) HasDelegateListeners() bool {
	for _, d := range b.delegateList() {
		if d.HasListeners() {
			return true
		}
	}
	return false
}

// HasListeners reports whether the bus has any listener, own or delegated.
func (b *Bus) HasListeners() bool {
	return b.HasOwnListeners() || b.HasDelegateListeners()
}

// Listeners returns per-event listener counts across b and every delegate.
// Event names without listeners are absent.
func (b *Bus) Listeners() map[string]int {
	out := make(map[string]int)
	b.mergeListeners(out)
	return out
}

func (b *Bus) mergeListeners(into map[string]int) {
	for _, name := range b.events.names() {
		if n := b.events.count(name); n > 0 {
			into[name] += n
		}
	}
	for _, d := range b.delegateList() {
		d.mergeListeners(into)
	}
}

// listenerView is the total listener count across b and every delegate.
func (b *Bus) listenerView() int {
	n := b.events.size()
	for _, d := range b.delegateList() {
		n += d.listenerView()
	}
	return n
}

// Stats returns a snapshot of the bus activity counters.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsEmitted:    b.emitted.Load(),
		EventsHandled:    b.handledCount.Load(),
		EventsUnhandled:  b.unhandledCount.Load(),
		ListenersAdded:   b.listenersAdded.Load(),
		ListenersRemoved: b.listenersRemoved.Load(),
		Listeners:        b.events.size(),
		Delegates:        len(b.delegateList()),
	}
}

// Destroy detaches every delegate, removes all listeners and lifecycle
// hooks, and clears the activity state. No lifecycle signals fire during
// teardown. The bus stays usable afterwards, just empty. Destroy is
// idempotent.
func (b *Bus) Destroy() {
	b.mu.Lock()
	delegations := b.delegates
	b.delegates = nil
	b.mu.Unlock()

	// Detach delegate hooks before clearing state so delegate listener
	// changes can no longer flip this bus back to active.
	for _, dg := range delegations {
		for _, off := range dg.detach {
			off()
		}
	}
	b.events.clear()
	b.lifecycle.clear()
	b.active.Store(false)
	b.log().Debug("bus destroyed")
}

// log resolves the bus logger. When no logger was configured the current
// slog default is used, so late logger setup is honored.
func (b *Bus) log() *slog.Logger {
	l := b.logger
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", "busbar", "bus", b.name, "bus_id", b.id)
}
