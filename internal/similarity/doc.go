// Package similarity computes a normalized textual similarity ratio
// between two strings.
//
// The metric is the classic sequence-matcher ratio: 2*M/T, where M is the
// total length of matching blocks found by a greedy longest-match search
// applied recursively to the unmatched remainders, and T is the combined
// length of both inputs. Both inputs are trimmed of leading and trailing
// whitespace before matching.
//
// Design decision: We implement the greedy matching-block algorithm rather
// than an edit-distance metric because the downstream match-tier thresholds
// (0.80 and 0.95) are tuned to this exact ratio. A differently normalized
// metric would silently shift every verdict.
package similarity
