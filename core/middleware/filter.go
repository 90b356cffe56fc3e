package middleware

import "github.com/busworks/busbar/core"

// Filter returns middleware that delivers only events satisfying pred.
func Filter(pred func(event string, payload any) bool) Middleware {
	return func(next core.EventHandler) core.EventHandler {
		return func(event string, payload any) {
			if pred(event, payload) {
				next(event, payload)
			}
		}
	}
}
