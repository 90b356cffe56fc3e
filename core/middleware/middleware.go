// Package middleware provides opt-in wrappers for bus handlers.
//
// The bus itself never alters handler behavior: panics propagate and every
// listener runs exactly as registered. Wrap handlers explicitly where
// logging, panic recovery, or delivery policies are wanted:
//
//	b.Any([]string{"job.done"}, middleware.Chain(handler,
//	    middleware.Recovery(logger),
//	    middleware.Logging(logger),
//	))
package middleware

import "github.com/busworks/busbar/core"

// Middleware wraps an EventHandler with additional behavior.
type Middleware func(core.EventHandler) core.EventHandler

// Chain wraps h with mws. The first middleware is outermost: given [A, B],
// delivery runs A -> B -> h.
func Chain(h core.EventHandler, mws ...Middleware) core.EventHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// ChainHandler adapts Chain to payload-only handlers for use with On.
// Middleware sees an empty event name; wrap an EventHandler and subscribe
// with Any or Proxy when the name matters.
func ChainHandler(h core.Handler, mws ...Middleware) core.Handler {
	wrapped := Chain(func(_ string, payload any) { h(payload) }, mws...)
	return func(payload any) { wrapped("", payload) }
}
