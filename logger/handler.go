package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Formatter renders a record as a single entry, without the trailing newline.
type Formatter interface {
	Format(r slog.Record) string
}

// writerHandler is a slog.Handler that writes one formatted entry per record.
// Attributes and groups are not rendered.
type writerHandler struct {
	mu     sync.Mutex
	w      io.Writer
	format Formatter
	level  slog.Leveler
	closed bool
}

var _ slog.Handler = &writerHandler{}

func newWriterHandler(w io.Writer, format Formatter, level slog.Leveler) *writerHandler {
	return &writerHandler{w: w, format: format, level: level}
}

func (h *writerHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record. The mutex keeps concurrent entries from interleaving.
func (h *writerHandler) Handle(_ context.Context, r slog.Record) error {
	line := h.format.Format(r) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	_, err := io.WriteString(h.w, line)
	return err
}

func (h *writerHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *writerHandler) WithGroup(string) slog.Handler {
	return h
}

// close stops output and closes the writer when it is an io.Closer.
func (h *writerHandler) close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if c, ok := h.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// fanoutHandler dispatches each record to every enabled child, in order.
type fanoutHandler []slog.Handler

var _ slog.Handler = fanoutHandler{}

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
