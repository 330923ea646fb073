package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. They are
// package-level sentinels so callers can use errors.Is for programmatic
// handling while still getting human-readable messages.
var (
	// ErrNoInput is returned when no input file is specified.
	ErrNoInput = errors.New("no input specified: provide one or more HTML files, or \"-\" for stdin")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxInputSize is returned when the input size cap is not positive.
	ErrInvalidMaxInputSize = errors.New("invalid max input size: must be positive")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// Zero concurrency would mean no analyses run at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
