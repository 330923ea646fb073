package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "htmlcheck"

	// DefaultMaxInputSize caps the size of a single input document.
	// 5MB is far beyond any realistic HTML exercise while preventing
	// memory exhaustion from an accidental binary or log file.
	DefaultMaxInputSize = 5 * 1024 * 1024

	// DefaultConcurrency is the number of inputs analyzed in parallel
	// when several files are passed on the command line. Analysis is
	// CPU-bound and inputs are small, so a low bound is enough.
	DefaultConcurrency = 4
)

// Config holds all configuration options for htmlcheck.
// This struct is populated from CLI flags and the optional config file,
// then passed through the application via dependency injection rather
// than global state.
type Config struct {
	// ReferenceFile is the path to a replacement reference document.
	// When empty, the embedded reference layout is used.
	ReferenceFile string

	// MaxInputSize is the input size cap in bytes.
	// Zero means use DefaultMaxInputSize.
	MaxInputSize int64

	// Concurrency is the number of inputs analyzed in parallel.
	Concurrency int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .htmlcheck in the current
	// directory, the home directory, and the XDG config directory.
	ConfigFilePath string

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Targets is the list of input files to analyze.
	// The special value "-" reads the document from stdin.
	Targets []string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxInputSize: DefaultMaxInputSize,
		Concurrency:  DefaultConcurrency,
	}
}

// Validate checks if the configuration is valid.
// It returns one of the package sentinel errors so callers can dispatch
// with errors.Is.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoInput
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxInputSize <= 0 {
		return ErrInvalidMaxInputSize
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for htmlcheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/htmlcheck
// On macOS: ~/Library/Application Support/htmlcheck
// On Windows: %APPDATA%\htmlcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
