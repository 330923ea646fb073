// Package indicator scores heuristic AI-writing indicators in raw HTML text.
//
// A fixed, ordered battery of pattern checks runs against the raw text (not
// a parsed tree). Each check pairs a predicate with a fixed weight and a
// descriptive label; triggered weights are summed and clamped at MaxScore,
// and triggered labels are reported in battery order. Weights are not
// mutually exclusive.
//
// The checks are deliberately textual: fragment counting can overcount
// (a substring inside an unrelated word) or undercount variants. That
// imprecision is part of the documented heuristic, not a defect to fix;
// the verdict thresholds are tuned to this exact battery.
package indicator
