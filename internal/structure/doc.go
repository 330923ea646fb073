// Package structure extracts structural facts from HTML text.
//
// The analyzer parses the input with a lenient HTML parser and reports a
// fixed set of boolean and count facts (DOCTYPE presence, Bootstrap links,
// grid element counts, custom style blocks). Malformed markup is tolerated:
// unclosed tags, missing DOCTYPE, and arbitrary attribute ordering never
// cause a failure. The only error condition is input from which no document
// tree can be built at all, signaled by ErrParse so the caller can render
// the structure as unknown instead of crashing.
package structure
