package core

// Handler consumes an event payload.
type Handler func(payload any)

// EventHandler consumes an event payload together with the name of the event
// that fired. Multi-event and proxy subscriptions use this shape because the
// handler cannot otherwise tell its events apart.
type EventHandler func(event string, payload any)

// Unsubscribe removes the subscription that produced it. Calling it more
// than once is safe; every call after the first is a no-op.
type Unsubscribe func()

// Typed adapts a strongly typed handler to Handler. Payloads of any other
// type are silently ignored.
//
//	b.On("order.created", core.Typed(func(o Order) {
//	    fmt.Println(o.ID)
//	}))
func Typed[T any](h func(T)) Handler {
	return func(payload any) {
		if v, ok := payload.(T); ok {
			h(v)
		}
	}
}

// TypedEvent adapts a strongly typed handler to EventHandler. Payloads of
// any other type are silently ignored.
func TypedEvent[T any](h func(event string, v T)) EventHandler {
	return func(event string, payload any) {
		if v, ok := payload.(T); ok {
			h(event, v)
		}
	}
}
