// Package checker orchestrates the analysis of one HTML input against the
// reference document and assembles the final report.
//
// # Architecture
//
// A Checker runs a fixed sequence of steps over a fresh AnalysisReport:
//
//   - similarity: sequence-similarity ratio against the reference
//   - structure: structural fact extraction (parse failures degrade to
//     an unknown-structure marker, never an error)
//   - indicators: the heuristic AI-indicator battery
//   - verdicts: derived scores and threshold-based tier labels
//
// The three analysis steps are independent pure functions of the input
// text with no shared mutable state; running them in sequence keeps a
// single analysis synchronous and deterministic. Steps only communicate
// through the report they fill in.
//
// # Batch
//
// Batch analyzes several inputs concurrently, one report per input, with
// a bounded errgroup. Each input is still compared only against the single
// reference document; there is no cross-input comparison.
package checker
