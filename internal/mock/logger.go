package mock

import (
	"context"
	"log/slog"
	"sync"
)

// Entry is one captured log record.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder captures slog records so tests can assert on diagnostics.
type LogRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// Logger returns a *slog.Logger that writes into the recorder at all levels.
func (r *LogRecorder) Logger() *slog.Logger {
	return slog.New(recorderHandler{rec: r})
}

// Entries returns a copy of the captured records.
func (r *LogRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has reports whether a record with the given level and message was
// captured.
func (r *LogRecorder) Has(level slog.Level, message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}

func (r *LogRecorder) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

type recorderHandler struct {
	rec   *LogRecorder
	attrs []slog.Attr
}

func (h recorderHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h recorderHandler) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]any, rec.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.rec.add(Entry{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	return nil
}

func (h recorderHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return recorderHandler{rec: h.rec, attrs: merged}
}

func (h recorderHandler) WithGroup(string) slog.Handler {
	return h
}
