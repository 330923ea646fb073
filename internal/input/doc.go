// Package input reads user-submitted HTML documents for analysis.
//
// The reader enforces a size cap, decodes legacy charsets to UTF-8 using
// meta-tag and BOM sniffing, and rejects blank submissions. Blank-input
// validation belongs here, at the presentation boundary: the analysis
// core itself is total over all text including empty strings.
package input
