package checker

import (
	"context"
	"log/slog"

	"github.com/nao1215/htmlcheck/internal/model"
)

// Step is one stage of the analysis. Steps are executed in sequence, each
// receiving the report accumulated by the previous steps.
//
// Design decision: We use an interface rather than function types because:
//  1. It allows steps to carry configuration state (the reference text)
//  2. It provides a Name() method for logging and debugging
//  3. Custom steps can be registered without changing the Checker
type Step interface {
	// Do executes the step, filling in its portion of the report.
	// Non-fatal conditions (such as unparseable structure) are recorded
	// in the report and return nil.
	Do(ctx context.Context, report *model.AnalysisReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Checker runs the analysis steps over individual inputs.
// A Checker is immutable after construction and safe for concurrent use:
// all per-analysis state lives in the report.
type Checker struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets a custom logger for the checker.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithExtraSteps appends additional steps after the built-in ones.
func WithExtraSteps(steps ...Step) Option {
	return func(c *Checker) {
		c.steps = append(c.steps, steps...)
	}
}

// New creates a Checker with the built-in analysis steps registered.
// The reference text is the baseline document every input is compared to.
func New(referenceText string, opts ...Option) *Checker {
	c := &Checker{
		steps: []Step{
			NewSimilarityStep(referenceText),
			NewStructureStep(),
			NewIndicatorStep(),
			NewVerdictStep(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Run analyzes one input and returns the assembled report.
// name identifies the input in the report (file path or "stdin").
//
// Cancellation is checked between steps; an individual step is never
// interrupted because every step is a bounded CPU-only computation.
func (c *Checker) Run(ctx context.Context, name, input string) (*model.AnalysisReport, error) {
	report := model.NewAnalysisReport(name, input)

	for _, step := range c.steps {
		select {
		case <-ctx.Done():
			c.logger.Warn("analysis cancelled",
				"input", name,
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return nil, ctx.Err()
		default:
		}

		c.logger.Debug("running analysis step", "input", name, "step", step.Name())
		if err := step.Do(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}
