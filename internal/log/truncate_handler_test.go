package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"
)

// TestTruncateHandler_BoundsStringValues tests that oversized attribute
// values are cut before reaching the underlying handler.
func TestTruncateHandler_BoundsStringValues(t *testing.T) {
	t.Parallel()

	t.Run("long string value is truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(
			slog.NewTextHandler(&buf, nil),
			WithMaxValueLen(10),
		))

		logger.Info("msg", "snippet", strings.Repeat("a", 50))

		output := buf.String()
		if !strings.Contains(output, TruncationMarker) {
			t.Errorf("expected truncation marker, got: %s", output)
		}
		if strings.Contains(output, strings.Repeat("a", 11)) {
			t.Errorf("expected value cut at 10 runes, got: %s", output)
		}
	})

	t.Run("short string value is untouched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(
			slog.NewTextHandler(&buf, nil),
			WithMaxValueLen(10),
		))

		logger.Info("msg", "key", "short")

		output := buf.String()
		if !strings.Contains(output, "key=short") {
			t.Errorf("expected unmodified value, got: %s", output)
		}
		if strings.Contains(output, TruncationMarker) {
			t.Errorf("expected no truncation marker, got: %s", output)
		}
	})

	t.Run("non-string values are untouched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(
			slog.NewTextHandler(&buf, nil),
			WithMaxValueLen(1),
		))

		logger.Info("msg", "count", 123456)

		if !strings.Contains(buf.String(), "count=123456") {
			t.Errorf("expected numeric value preserved, got: %s", buf.String())
		}
	})

	t.Run("values inside groups are truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(
			slog.NewTextHandler(&buf, nil),
			WithMaxValueLen(5),
		))

		logger.Info("msg", slog.Group("doc", slog.String("body", strings.Repeat("b", 20))))

		if !strings.Contains(buf.String(), TruncationMarker) {
			t.Errorf("expected truncation inside group, got: %s", buf.String())
		}
	})

	t.Run("WithAttrs attributes are truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(
			slog.NewTextHandler(&buf, nil),
			WithMaxValueLen(5),
		))

		logger.With("body", strings.Repeat("c", 20)).Info("msg")

		if !strings.Contains(buf.String(), TruncationMarker) {
			t.Errorf("expected truncation via WithAttrs, got: %s", buf.String())
		}
	})
}

// TestTruncate tests the rune-boundary cut.
func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("multi-byte runes are cut on rune boundaries", func(t *testing.T) {
		t.Parallel()

		got, cut := truncate(strings.Repeat("日", 10), 3)
		if !cut {
			t.Fatal("expected truncation")
		}
		if !utf8.ValidString(got) {
			t.Errorf("expected valid UTF-8, got %q", got)
		}
		if got != "日日日"+TruncationMarker {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("string at the cap is not cut", func(t *testing.T) {
		t.Parallel()

		got, cut := truncate("abc", 3)
		if cut {
			t.Error("expected no truncation")
		}
		if got != "abc" {
			t.Errorf("unexpected result: %q", got)
		}
	})
}

// TestNewLogger tests logger level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level hides info records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("hidden")
		logger.Warn("visible")

		output := buf.String()
		if strings.Contains(output, "hidden") {
			t.Errorf("expected info record suppressed, got: %s", output)
		}
		if !strings.Contains(output, "visible") {
			t.Errorf("expected warn record, got: %s", output)
		}
	})

	t.Run("verbose level shows debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("details")

		if !strings.Contains(buf.String(), "details") {
			t.Errorf("expected debug record, got: %s", buf.String())
		}
	})
}
