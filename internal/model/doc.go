// Package model defines the core data structures used throughout htmlcheck.
//
// This package contains the following main types:
//   - StructureFacts: Boolean and count facts extracted from parsed HTML
//   - AnalysisReport: The complete result of analyzing one input document
//   - MatchTier / AuthorshipTier: Threshold-based verdict labels
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (structure, checker, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
