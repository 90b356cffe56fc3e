package core

// delegation is one edge of the delegation graph: a delegate bus plus the
// unsubscribes for the four lifecycle hooks that keep the delegator's
// activity state in step with the delegate's listeners.
type delegation struct {
	delegate *Bus
	detach   []Unsubscribe
}

// Pipe forwards every event emitted on b to d, after b's own listeners have
// run. It returns d unchanged so pipes chain:
//
//	a.Pipe(b).Pipe(c)
//
// builds a -> b -> c. Four lifecycle hooks are installed on d so listener
// changes on d (and below) replay on b; a delegate with listeners therefore
// keeps b active even when b has none of its own. Piping a bus to itself or
// piping the same delegate twice is a no-op. Cycles between distinct buses
// are not detected; emitting on one recurses until the stack runs out.
func (b *Bus) Pipe(d *Bus) *Bus {
	if d == nil || d == b {
		return d
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, dg := range b.delegates {
		if dg.delegate == d {
			return d
		}
	}
	detach := []Unsubscribe{
		d.Hook(SignalWillAddListener, func(p any) { b.emitWillAdd(eventName(p)) }),
		d.Hook(SignalDidAddListener, func(p any) { b.emitDidAdd(eventName(p)) }),
		d.Hook(SignalWillRemoveListener, func(p any) { b.emitWillRemove(eventName(p)) }),
		d.Hook(SignalDidRemoveListener, func(p any) { b.emitDidRemove(eventName(p)) }),
	}
	b.delegates = append(b.delegates, &delegation{delegate: d, detach: detach})
	b.log().Debug("delegate piped", "delegate", d.name, "delegate_id", d.id)
	return d
}

// Unpipe reverses Pipe: it removes the lifecycle hooks from d and stops
// forwarding to it. Unpiping a bus that was never piped is a no-op. The
// delegator's activity state is not re-evaluated.
func (b *Bus) Unpipe(d *Bus) {
	b.mu.Lock()
	var found *delegation
	for i, dg := range b.delegates {
		if dg.delegate == d {
			found = dg
			b.delegates = append(b.delegates[:i], b.delegates[i+1:]...)
			break
		}
	}
	b.mu.Unlock()
	if found == nil {
		return
	}
	for _, off := range found.detach {
		off()
	}
	b.log().Debug("delegate unpiped", "delegate", d.name, "delegate_id", d.id)
}

// delegateList snapshots the delegate buses in pipe order.
func (b *Bus) delegateList() []*Bus {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.delegates) == 0 {
		return nil
	}
	out := make([]*Bus, len(b.delegates))
	for i, dg := range b.delegates {
		out[i] = dg.delegate
	}
	return out
}

// eventName extracts the event name from a listener-signal payload.
func eventName(payload any) string {
	name, _ := payload.(string)
	return name
}
