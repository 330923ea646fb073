package model

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"
)

// AnalysisReport is the complete result of analyzing one input document
// against the reference layout. It is assembled by the checker pipeline
// and treated as immutable once all steps have run.
//
// Design decision: We use a single flat struct rather than nesting the
// three component results because the report is small, serialized as a
// unit, and has no independent identity beyond the request that produced it.
type AnalysisReport struct {
	// InputName identifies the analyzed input (file path or "stdin").
	InputName string `json:"input_name"`

	// InputDigest is the SHA3-256 digest of the raw input text, hex encoded.
	// It lets two report files be matched to the same submission without
	// persisting the submission itself.
	InputDigest string `json:"input_digest"`

	// DateAnalyzed is the timestamp when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// === Similarity ===

	// Similarity is the sequence-similarity ratio against the reference
	// document, in [0.0, 1.0].
	Similarity float64 `json:"similarity"`

	// MatchVerdict is the human-readable match tier label.
	MatchVerdict string `json:"match_verdict,omitempty"`

	// === Structure ===

	// Structure holds the extracted structure facts.
	// Nil when the input could not be parsed (see StructureUnknown).
	Structure *StructureFacts `json:"structure,omitempty"`

	// StructureUnknown is true when structural parsing failed and the
	// structure facts are unavailable. The rest of the report is still valid.
	StructureUnknown bool `json:"structure_unknown,omitempty"`

	// StructureScore is the number of satisfied structure criteria,
	// in [0, MaxStructureScore]. Zero when StructureUnknown is true.
	StructureScore int `json:"structure_score"`

	// === AI indicators ===

	// AIScore is the aggregate heuristic indicator score, in [0, 10].
	AIScore float64 `json:"ai_score"`

	// AIIndicators lists the triggered indicator labels in battery order.
	AIIndicators []string `json:"ai_indicators,omitempty"`

	// AuthorshipVerdict is the human-readable authorship tier label.
	AuthorshipVerdict string `json:"authorship_verdict,omitempty"`

	// Input is the raw input text the report was computed from.
	// It is carried through the pipeline but never serialized; reports
	// must not persist user submissions.
	Input string `json:"-"`
}

// NewAnalysisReport creates a report shell for the given input.
// The digest and timestamp are fixed at creation; analysis steps fill
// in the remaining fields.
func NewAnalysisReport(name, input string) *AnalysisReport {
	digest := sha3.Sum256([]byte(input))
	return &AnalysisReport{
		InputName:    name,
		InputDigest:  hex.EncodeToString(digest[:]),
		DateAnalyzed: time.Now(),
		Input:        input,
	}
}

// Match returns the match tier derived from the similarity ratio.
func (r *AnalysisReport) Match() MatchTier {
	return MatchTierOf(r.Similarity)
}

// Authorship returns the authorship tier derived from the AI score.
func (r *AnalysisReport) Authorship() AuthorshipTier {
	return AuthorshipTierOf(r.AIScore)
}
