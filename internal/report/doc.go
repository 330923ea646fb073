// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text for terminal display
//   - JSONWriter: Structured JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation
//
// All writers implement the Writer interface and render the same
// AnalysisReport; selecting a format never changes the analysis itself.
package report
