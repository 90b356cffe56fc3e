package core

// Signal identifies a lifecycle notification a Bus emits about itself.
// Signals flow through a private secondary table, so lifecycle subscriptions
// never count as listeners and never trigger further signals.
type Signal string

// Lifecycle signals, in the order a bus moving from empty to occupied and
// back emits them. The four listener signals carry the affected event name
// as their payload; the four state signals carry nil.
const (
	// SignalWillActivate fires before the registration that will bring an
	// inactive bus to active.
	SignalWillActivate Signal = "willActivate"

	// SignalActive fires after a registration leaves the bus with at least
	// one listener, own or delegated.
	SignalActive Signal = "active"

	// SignalWillIdle fires before the removal of the last listener in the
	// bus's whole listener view.
	SignalWillIdle Signal = "willIdle"

	// SignalIdle fires after the bus loses its last listener.
	SignalIdle Signal = "idle"

	// SignalWillAddListener and SignalDidAddListener bracket every listener
	// registration.
	SignalWillAddListener Signal = "willAddListener"
	SignalDidAddListener  Signal = "didAddListener"

	// SignalWillRemoveListener and SignalDidRemoveListener bracket every
	// listener removal.
	SignalWillRemoveListener Signal = "willRemoveListener"
	SignalDidRemoveListener  Signal = "didRemoveListener"
)

// Hook subscribes h to a lifecycle signal. Hooks do not count toward
// HasListeners and never flip the activity state. Subscribing to a signal
// the bus never emits is allowed; the hook simply never fires.
func (b *Bus) Hook(sig Signal, h Handler) Unsubscribe {
	e := newEntry(func(_ string, payload any) { h(payload) })
	b.lifecycle.add(string(sig), e)
	return func() { b.lifecycle.remove(string(sig), e) }
}

// Monitor reports activity flips. It is equivalent to hooking SignalActive
// and SignalIdle; h receives the new state.
func (b *Bus) Monitor(h func(active bool)) Unsubscribe {
	offActive := b.Hook(SignalActive, func(any) { h(true) })
	offIdle := b.Hook(SignalIdle, func(any) { h(false) })
	return func() {
		offActive()
		offIdle()
	}
}

// signal delivers a lifecycle notification to hooks.
func (b *Bus) signal(sig Signal, payload any) {
	b.lifecycle.invoke(string(sig), string(sig), payload)
}

// emitWillAdd runs the pre-registration lifecycle sequence for event. Pipe
// replays it on the delegator when a delegate is about to gain a listener.
func (b *Bus) emitWillAdd(event string) {
	if !b.active.Load() {
		b.signal(SignalWillActivate, nil)
	}
	b.signal(SignalWillAddListener, event)
}

// emitDidAdd runs the post-registration lifecycle sequence for event,
// flipping the bus to active when the registration was its first listener.
func (b *Bus) emitDidAdd(event string) {
	b.signal(SignalDidAddListener, event)
	if !b.HasListeners() {
		return
	}
	if b.active.CompareAndSwap(false, true) {
		b.signal(SignalActive, nil)
	}
}

// emitWillRemove runs the pre-removal lifecycle sequence for event. The
// willIdle signal fires only when the removal is about to empty the whole
// listener view of an active bus.
func (b *Bus) emitWillRemove(event string) {
	if b.active.Load() && b.listenerView() == 1 {
		b.signal(SignalWillIdle, nil)
	}
	b.signal(SignalWillRemoveListener, event)
}

// emitDidRemove runs the post-removal lifecycle sequence for event, flipping
// the bus to idle when no listeners remain anywhere.
func (b *Bus) emitDidRemove(event string) {
	b.signal(SignalDidRemoveListener, event)
	if b.HasListeners() {
		return
	}
	if b.active.CompareAndSwap(true, false) {
		b.signal(SignalIdle, nil)
	}
}
