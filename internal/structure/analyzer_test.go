package structure

import (
	"errors"
	"testing"

	"github.com/nao1215/htmlcheck/internal/model"
	"github.com/nao1215/htmlcheck/internal/reference"
)

// TestAnalyze tests structure fact extraction.
func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("reference layout satisfies every criterion", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze(reference.Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := &model.StructureFacts{
			HasDoctype:      true,
			HasBootstrapCSS: true,
			HasBootstrapJS:  true,
			HasContainer:    true,
			RowCount:        4,
			ColElements:     9,
			HasCustomCSS:    true,
			HasMediaQuery:   true,
		}
		if *facts != *want {
			t.Errorf("expected %+v, got %+v", want, facts)
		}
		if got := facts.Score(); got != model.MaxStructureScore {
			t.Errorf("expected score %d, got %d", model.MaxStructureScore, got)
		}
	})

	t.Run("empty input yields zeroed facts", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *facts != (model.StructureFacts{}) {
			t.Errorf("expected zero facts, got %+v", facts)
		}
		if facts.Score() != 0 {
			t.Errorf("expected score 0, got %d", facts.Score())
		}
	})

	t.Run("non-HTML text yields zeroed facts", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze("just some plain text, not markup at all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *facts != (model.StructureFacts{}) {
			t.Errorf("expected zero facts, got %+v", facts)
		}
	})

	t.Run("invalid UTF-8 input returns ErrParse", func(t *testing.T) {
		t.Parallel()

		if _, err := Analyze("<html>\xff\xfe\xfd</html>"); !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})

	t.Run("unclosed tags are tolerated", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze(`<div class="container"><div class="row"><div class="col-6">`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !facts.HasContainer {
			t.Error("expected HasContainer true")
		}
		if facts.RowCount != 1 {
			t.Errorf("expected RowCount 1, got %d", facts.RowCount)
		}
		if facts.ColElements != 1 {
			t.Errorf("expected ColElements 1, got %d", facts.ColElements)
		}
	})

	t.Run("doctype check is case-sensitive", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze("<!doctype html>\n<html></html>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if facts.HasDoctype {
			t.Error("expected HasDoctype false for lowercase doctype")
		}
	})

	t.Run("doctype after leading whitespace is detected", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze("\n\n  <!DOCTYPE html>\n<html></html>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !facts.HasDoctype {
			t.Error("expected HasDoctype true")
		}
	})

	t.Run("bootstrap facts need both name and extension", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze(`<link href="bootstrap.min.css"><p>style.js</p>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !facts.HasBootstrapCSS {
			t.Error("expected HasBootstrapCSS true")
		}
		// "bootstrap" and ".js" both appear somewhere in the document,
		// matching the substring semantics even across attributes
		if !facts.HasBootstrapJS {
			t.Error("expected HasBootstrapJS true")
		}

		facts, err = Analyze(`<link href="styles.css">`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if facts.HasBootstrapCSS {
			t.Error("expected HasBootstrapCSS false without bootstrap name")
		}
	})

	t.Run("class fragments match inside tokens", func(t *testing.T) {
		t.Parallel()

		facts, err := Analyze(`<div class="container-fluid"><div class="row-custom"><span class="col-md-4 col-lg-2"></span></div></div>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !facts.HasContainer {
			t.Error("expected container-fluid to count as container")
		}
		if facts.RowCount != 1 {
			t.Errorf("expected RowCount 1, got %d", facts.RowCount)
		}
		// One element with two col- tokens still counts once
		if facts.ColElements != 1 {
			t.Errorf("expected ColElements 1, got %d", facts.ColElements)
		}
	})
}

// TestHasClassToken tests token matching in class attribute values.
func TestHasClassToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		class    string
		fragment string
		want     bool
	}{
		{"exact token", "row", "row", true},
		{"fragment inside token", "col-md-6", "col-", true},
		{"second token", "box bg-primary", "bg-", true},
		{"absent fragment", "box shadow", "col-", false},
		{"empty class", "", "row", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hasClassToken(tt.class, tt.fragment); got != tt.want {
				t.Errorf("hasClassToken(%q, %q) = %v, want %v", tt.class, tt.fragment, got, tt.want)
			}
		})
	}
}
