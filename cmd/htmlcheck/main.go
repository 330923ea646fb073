// Package main provides the entry point for the htmlcheck CLI.
//
// htmlcheck grades HTML documents against a reference Bootstrap grid
// layout. It reports a similarity score, a structural checklist, and a
// heuristic AI-writing likelihood score.
//
// Usage:
//
//	htmlcheck check <file.html>
//	htmlcheck check - < submission.html
//
// See --help for all available options.
package main

// main is the entry point for htmlcheck.
func main() {
	Execute()
}
