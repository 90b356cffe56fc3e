package middleware

import (
	"sync"

	"github.com/busworks/busbar/core"
)

// Once returns middleware that delivers at most one event and drops the
// rest. Removing the subscription afterwards remains the caller's job.
func Once() Middleware {
	return func(next core.EventHandler) core.EventHandler {
		var once sync.Once
		return func(event string, payload any) {
			once.Do(func() { next(event, payload) })
		}
	}
}
