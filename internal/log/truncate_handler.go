package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the default length cap for string attribute values.
// 256 runes keeps a useful snippet while bounding the size of a log line.
const DefaultMaxValueLen = 256

// TruncationMarker is appended to values that were cut.
const TruncationMarker = "...(truncated)"

// TruncateHandler wraps an slog.Handler and truncates oversized string
// attribute values before passing records to the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites can log document snippets without measuring them first
type TruncateHandler struct {
	// handler is the underlying slog handler that receives bounded records.
	handler slog.Handler

	// maxLen is the value length cap in runes.
	maxLen int
}

// TruncateHandlerOption configures a TruncateHandler.
type TruncateHandlerOption func(*TruncateHandler)

// WithMaxValueLen sets the value length cap in runes.
// Values below one are ignored.
func WithMaxValueLen(n int) TruncateHandlerOption {
	return func(h *TruncateHandler) {
		if n > 0 {
			h.maxLen = n
		}
	}
}

// NewTruncateHandler creates a TruncateHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewTruncateHandler(handler slog.Handler, opts ...TruncateHandlerOption) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}

	h := &TruncateHandler{
		handler: handler,
		maxLen:  DefaultMaxValueLen,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle bounds the record's attributes and passes it to the underlying handler.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	bounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		bounded.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, bounded)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are bounded before being added.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	boundedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		boundedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(boundedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr bounds a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		boundedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			boundedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(boundedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		if bounded, cut := truncate(a.Value.String(), h.maxLen); cut {
			return slog.String(a.Key, bounded)
		}
	}
	return a
}

// truncate cuts s to at most maxLen runes, appending the truncation marker.
// Cutting happens on rune boundaries so no invalid UTF-8 reaches the logs.
func truncate(s string, maxLen int) (string, bool) {
	if utf8.RuneCountInString(s) <= maxLen {
		return s, false
	}

	runes := []rune(s)
	return string(runes[:maxLen]) + TruncationMarker, true
}

// NewLogger creates a *slog.Logger writing text records to w through a
// TruncateHandler. Verbose selects Debug level; the default is Warn so
// normal runs stay quiet on stderr.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncateHandler(textHandler))
}
