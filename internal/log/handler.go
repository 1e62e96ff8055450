package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// TextHandler extends the standard [slog.TextHandler] with formatting close to
// the default slog handler: each entry is prefixed with a right-padded level
// indicator and the message, while the time, level, and message attributes are
// dropped from the structured output.
//
// The output format is:
// LEVEL MESSAGE key1=value1 key2=value2
type TextHandler struct {
	*slog.TextHandler
	mu sync.Mutex
	w  io.Writer
}

func NewTextHandler(w io.Writer, opts *slog.HandlerOptions) *TextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	// Remove time, level, and message from the default attributes.
	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey {
			return slog.Attr{}
		}
		return a
	}

	return &TextHandler{
		TextHandler: slog.NewTextHandler(w, opts),
		w:           w,
	}
}

func (h *TextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.TextHandler.Enabled(ctx, level)
}

func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.TextHandler.WithAttrs(attrs)
}

func (h *TextHandler) WithGroup(name string) slog.Handler {
	return h.TextHandler.WithGroup(name)
}

func (h *TextHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	levelMsg := fmt.Sprintf("%-5s %s ", r.Level.String(), r.Message)
	if _, err := h.w.Write([]byte(levelMsg)); err != nil {
		return err
	}

	return h.TextHandler.Handle(ctx, r)
}
