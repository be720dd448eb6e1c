// Package log provides the verbosity-gated diagnostics channel (slog) for
// the interpreter core. Diagnostics are opt-in: nothing prints at the
// default verbosity, -v enables verbose messages, -vv adds trace messages.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LevelTrace is the very-verbose level selected by -vv.
const LevelTrace = slog.LevelDebug - 4

// Handler implements slog.Handler, printing diagnostics in the host's
// "# prismview:" prefixed form.
type Handler struct {
	mu    sync.Mutex
	w     io.Writer
	level slog.Level
}

// HandlerOption configures the Handler.
type HandlerOption func(*Handler)

// WithWriter sets the destination for diagnostics (default: stdout).
func WithWriter(w io.Writer) HandlerOption {
	return func(h *Handler) {
		h.w = w
	}
}

// WithLevel sets the minimum level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(h *Handler) {
		h.level = level
	}
}

// NewHandler creates a Handler with the given options.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		w:     os.Stdout,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return level >= h.level
}

// Handle prints the record on the diagnostics channel.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	line := "# prismview: " + record.Message
	record.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, line)
	return err
}

// WithAttrs returns the handler unchanged; diagnostics carry their attrs
// inline per record.
func (h *Handler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler unchanged.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func (h *Handler) setLevel(level slog.Level) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.level = level
}
