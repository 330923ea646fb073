package checker

import (
	"context"
	"math"
	"testing"

	"github.com/nao1215/htmlcheck/internal/model"
)

// TestSimilarityStep tests the similarity computation step.
func TestSimilarityStep(t *testing.T) {
	t.Parallel()

	t.Run("identical input scores 1.0", func(t *testing.T) {
		t.Parallel()

		step := NewSimilarityStep("<html></html>")
		report := model.NewAnalysisReport("x.html", "<html></html>")

		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(report.Similarity-1.0) > 1e-9 {
			t.Errorf("expected 1.0, got %f", report.Similarity)
		}
	})

	t.Run("disjoint input scores 0.0", func(t *testing.T) {
		t.Parallel()

		step := NewSimilarityStep("abc")
		report := model.NewAnalysisReport("x.txt", "xyz")

		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Similarity != 0.0 {
			t.Errorf("expected 0.0, got %f", report.Similarity)
		}
	})
}

// TestStructureStep tests the structure extraction step.
func TestStructureStep(t *testing.T) {
	t.Parallel()

	t.Run("records facts and score", func(t *testing.T) {
		t.Parallel()

		step := NewStructureStep(WithStructureLogger(discardLogger()))
		report := model.NewAnalysisReport("x.html",
			`<!DOCTYPE html><div class="container"><div class="row"></div></div>`)

		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Structure == nil {
			t.Fatal("expected structure facts")
		}
		if !report.Structure.HasDoctype || !report.Structure.HasContainer {
			t.Errorf("unexpected facts: %+v", report.Structure)
		}
		if report.StructureScore != 2 {
			t.Errorf("expected score 2, got %d", report.StructureScore)
		}
	})

	t.Run("parse failure is recorded, not returned", func(t *testing.T) {
		t.Parallel()

		step := NewStructureStep(WithStructureLogger(discardLogger()))
		report := model.NewAnalysisReport("garbage.bin", "\xff\xfe")

		if err := step.Do(context.Background(), report); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !report.StructureUnknown {
			t.Error("expected StructureUnknown true")
		}
		if report.Structure != nil {
			t.Error("expected nil structure facts")
		}
	})
}

// TestVerdictStep tests verdict derivation from recorded scores.
func TestVerdictStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		similarity     float64
		aiScore        float64
		wantMatch      string
		wantAuthorship string
	}{
		{"high scores", 0.99, 9.0, "excellent match", "highly likely AI-generated"},
		{"middle scores", 0.85, 5.0, "good match", "possibly AI-assisted"},
		{"low scores", 0.30, 1.0, "significant differences", "likely human-written"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := &model.AnalysisReport{Similarity: tt.similarity, AIScore: tt.aiScore}
			if err := NewVerdictStep().Do(context.Background(), report); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.MatchVerdict != tt.wantMatch {
				t.Errorf("expected match %q, got %q", tt.wantMatch, report.MatchVerdict)
			}
			if report.AuthorshipVerdict != tt.wantAuthorship {
				t.Errorf("expected authorship %q, got %q", tt.wantAuthorship, report.AuthorshipVerdict)
			}
		})
	}
}
