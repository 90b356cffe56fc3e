package middleware

import (
	"log/slog"
	"runtime"

	"github.com/busworks/busbar/core"
)

// Recovery returns middleware that recovers from panics in the wrapped
// handler and logs the stack trace. Handlers left unwrapped keep the
// default behavior: their panics propagate to the emitter.
func Recovery(l *slog.Logger) Middleware {
	return func(next core.EventHandler) core.EventHandler {
		return func(event string, payload any) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)
					logger(l).Error("handler panic recovered",
						"event", event,
						"panic", r,
						"stack", string(buf[:n]))
				}
			}()
			next(event, payload)
		}
	}
}
