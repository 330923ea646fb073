package model

// Verdict thresholds. All cutoffs are inclusive on the lower bound.
// These values are tuned to the sequence-similarity ratio and the fixed
// indicator battery; changing either without retuning breaks the verdicts.
const (
	// ExcellentMatchThreshold is the minimum similarity ratio for an
	// "excellent match" verdict.
	ExcellentMatchThreshold = 0.95

	// GoodMatchThreshold is the minimum similarity ratio for a
	// "good match" verdict.
	GoodMatchThreshold = 0.80

	// LikelyAIThreshold is the minimum AI indicator score for a
	// "highly likely AI-generated" verdict.
	LikelyAIThreshold = 7.0

	// PossiblyAIThreshold is the minimum AI indicator score for a
	// "possibly AI-assisted" verdict.
	PossiblyAIThreshold = 4.0
)

// MatchTier classifies how closely the input matches the reference document.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output when needed.
type MatchTier int

const (
	// MatchSignificantDiff indicates the input differs substantially
	// from the reference document (similarity below GoodMatchThreshold).
	MatchSignificantDiff MatchTier = iota

	// MatchGood indicates a close match with minor differences
	// (similarity in [GoodMatchThreshold, ExcellentMatchThreshold)).
	MatchGood

	// MatchExcellent indicates a near-identical match
	// (similarity at or above ExcellentMatchThreshold).
	MatchExcellent
)

// MatchTierOf returns the tier for a similarity ratio.
func MatchTierOf(ratio float64) MatchTier {
	switch {
	case ratio >= ExcellentMatchThreshold:
		return MatchExcellent
	case ratio >= GoodMatchThreshold:
		return MatchGood
	default:
		return MatchSignificantDiff
	}
}

// String returns the human-readable verdict for the tier.
func (t MatchTier) String() string {
	switch t {
	case MatchExcellent:
		return "excellent match"
	case MatchGood:
		return "good match"
	default:
		return "significant differences"
	}
}

// AuthorshipTier classifies how likely the input is AI-generated,
// based on the aggregate indicator score.
type AuthorshipTier int

const (
	// AuthorshipLikelyHuman indicates few AI-writing indicators
	// (score below PossiblyAIThreshold).
	AuthorshipLikelyHuman AuthorshipTier = iota

	// AuthorshipPossiblyAssisted indicates a moderate indicator score
	// (score in [PossiblyAIThreshold, LikelyAIThreshold)).
	AuthorshipPossiblyAssisted

	// AuthorshipLikelyAI indicates a high indicator score
	// (score at or above LikelyAIThreshold).
	AuthorshipLikelyAI
)

// AuthorshipTierOf returns the tier for an AI indicator score.
func AuthorshipTierOf(score float64) AuthorshipTier {
	switch {
	case score >= LikelyAIThreshold:
		return AuthorshipLikelyAI
	case score >= PossiblyAIThreshold:
		return AuthorshipPossiblyAssisted
	default:
		return AuthorshipLikelyHuman
	}
}

// String returns the human-readable verdict for the tier.
func (t AuthorshipTier) String() string {
	switch t {
	case AuthorshipLikelyAI:
		return "highly likely AI-generated"
	case AuthorshipPossiblyAssisted:
		return "possibly AI-assisted"
	default:
		return "likely human-written"
	}
}
