// Package logging provides a custom slog handler that tees diagnostics into
// the events table. Logs at WARN level and above are forwarded to the
// database so contrast repairs and generation problems survive restarts.
package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vinterdal/bloggverk/internal/model"
	"github.com/vinterdal/bloggverk/internal/store"
)

// EventLogHandler is a slog.Handler that wraps another handler and also
// writes WARN and ERROR level records to the events table.
type EventLogHandler struct {
	inner slog.Handler
	store *store.Store
	level slog.Level // minimum level forwarded to the events table
}

// NewEventLogHandler creates an EventLogHandler that wraps inner. Records at
// WARN and above are written to both the wrapped handler and the database.
func NewEventLogHandler(inner slog.Handler, st *store.Store) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		store: st,
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first.
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.writeEvent(r)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		store: h.store,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		store: h.store,
		level: h.level,
	}
}

// writeEvent stores one record in the events table. A background context is
// used so the event lands even when the request context is already canceled.
func (h *EventLogHandler) writeEvent(r slog.Record) {
	level := model.EventLevelWarning
	if r.Level >= slog.LevelError {
		level = model.EventLevelError
	}

	msg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		msg += " " + a.Key + "=" + a.Value.String()
		return true
	})

	_ = h.store.InsertEvent(context.Background(), level, extractSource(r), msg)
}

// extractSource finds a "source" attribute, or infers one from the message.
func extractSource(r slog.Record) string {
	var source string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "source" {
			source = a.Value.String()
			return false
		}
		return true
	})
	if source != "" {
		return source
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "color") || strings.Contains(msg, "contrast"):
		return "color"
	case strings.Contains(msg, "cache"):
		return "cache"
	case strings.Contains(msg, "portrait") || strings.Contains(msg, "persona") || strings.Contains(msg, "parse"):
		return "pipeline"
	default:
		return "system"
	}
}
