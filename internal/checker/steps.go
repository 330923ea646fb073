package checker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/htmlcheck/internal/indicator"
	"github.com/nao1215/htmlcheck/internal/model"
	"github.com/nao1215/htmlcheck/internal/similarity"
	"github.com/nao1215/htmlcheck/internal/structure"
)

// SimilarityStep computes the sequence-similarity ratio between the input
// and the reference document.
type SimilarityStep struct {
	// reference is the baseline document text.
	reference string
}

// NewSimilarityStep creates a similarity step bound to the given reference.
func NewSimilarityStep(reference string) *SimilarityStep {
	return &SimilarityStep{reference: reference}
}

// Name returns the step name.
func (s *SimilarityStep) Name() string {
	return "similarity"
}

// Do computes the ratio and records it on the report.
func (s *SimilarityStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Similarity = similarity.Ratio(report.Input, s.reference)
	return nil
}

// StructureStep extracts structure facts from the input.
// A parse failure is not an error of the analysis: the report is marked
// as having unknown structure and the remaining steps still run.
type StructureStep struct {
	logger *slog.Logger
}

// StructureStepOption configures a StructureStep.
type StructureStepOption func(*StructureStep)

// WithStructureLogger sets a custom logger for the structure step.
func WithStructureLogger(logger *slog.Logger) StructureStepOption {
	return func(s *StructureStep) {
		s.logger = logger
	}
}

// NewStructureStep creates a structure analysis step.
func NewStructureStep(opts ...StructureStepOption) *StructureStep {
	s := &StructureStep{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *StructureStep) Name() string {
	return "structure"
}

// Do analyzes the input structure and records facts and structure score.
func (s *StructureStep) Do(_ context.Context, report *model.AnalysisReport) error {
	facts, err := structure.Analyze(report.Input)
	if err != nil {
		if errors.Is(err, structure.ErrParse) {
			s.logger.Warn("structure unavailable",
				"input", report.InputName,
				"reason", err,
			)
			report.StructureUnknown = true
			return nil
		}
		return err
	}

	report.Structure = facts
	report.StructureScore = facts.Score()
	return nil
}

// IndicatorStep runs the heuristic AI-indicator battery over the raw input.
type IndicatorStep struct{}

// NewIndicatorStep creates an indicator scoring step.
func NewIndicatorStep() *IndicatorStep {
	return &IndicatorStep{}
}

// Name returns the step name.
func (s *IndicatorStep) Name() string {
	return "indicators"
}

// Do scores the indicators and records the result on the report.
func (s *IndicatorStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.AIScore, report.AIIndicators = indicator.Score(report.Input)
	return nil
}

// VerdictStep derives the threshold-based tier labels from the scores
// computed by the earlier steps. It must run last.
type VerdictStep struct{}

// NewVerdictStep creates a verdict derivation step.
func NewVerdictStep() *VerdictStep {
	return &VerdictStep{}
}

// Name returns the step name.
func (s *VerdictStep) Name() string {
	return "verdicts"
}

// Do fills in the human-readable verdicts.
func (s *VerdictStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.MatchVerdict = report.Match().String()
	report.AuthorshipVerdict = report.Authorship().String()
	return nil
}
