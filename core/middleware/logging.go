package middleware

import (
	"log/slog"
	"time"

	"github.com/busworks/busbar/core"
)

// Logging returns middleware that logs each delivery and its duration.
// A nil logger falls back to slog.Default.
func Logging(l *slog.Logger) Middleware {
	return func(next core.EventHandler) core.EventHandler {
		return func(event string, payload any) {
			start := time.Now()
			next(event, payload)
			logger(l).Debug("event delivered",
				"event", event,
				"elapsed", time.Since(start))
		}
	}
}

func logger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
