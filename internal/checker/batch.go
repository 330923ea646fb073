package checker

import (
	"context"
	"log/slog"

	"github.com/nao1215/htmlcheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of inputs analyzed in parallel.
const DefaultConcurrency = 4

// Input is one named document queued for batch analysis.
type Input struct {
	// Name identifies the input in its report (file path or "stdin").
	Name string

	// Text is the document content.
	Text string
}

// Batch analyzes multiple inputs concurrently using the checker.
// Each input gets its own report; inputs never interact with each other.
//
// Design decision: We bound concurrency with errgroup rather than spawning
// one goroutine per input because a long file list should not multiply
// memory use by the number of inputs.
type Batch struct {
	checker     *Checker
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithConcurrency sets the maximum number of concurrent analyses.
// Values below one are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// NewBatch creates a Batch that runs inputs through the given checker.
func NewBatch(checker *Checker, opts ...BatchOption) *Batch {
	b := &Batch{
		checker:     checker,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Run analyzes all inputs and returns their reports in input order.
// The first failed analysis cancels the remaining ones and its error is
// returned; reports are only returned when every input succeeded.
func (b *Batch) Run(ctx context.Context, inputs []Input) ([]*model.AnalysisReport, error) {
	reports := make([]*model.AnalysisReport, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, in := range inputs {
		g.Go(func() error {
			b.logger.Debug("analyzing input", "name", in.Name, "index", i)

			report, err := b.checker.Run(ctx, in.Name, in.Text)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
