// Package log provides logging utilities for htmlcheck.
//
// Analysis steps log snippets of the document they are working on. A raw
// HTML submission can be megabytes of minified markup, which would make a
// single log line unusable and leak the whole submission into log files.
// TruncateHandler wraps any slog.Handler and cuts oversized string
// attribute values down to a bounded prefix before they reach the
// underlying handler.
package log
