package indicator

import (
	"math"
	"reflect"
	"testing"

	"github.com/nao1215/htmlcheck/internal/reference"
)

// TestScore tests the indicator battery.
func TestScore(t *testing.T) {
	t.Parallel()

	t.Run("empty input scores zero", func(t *testing.T) {
		t.Parallel()

		score, indicators := Score("")
		if score != 0 {
			t.Errorf("expected score 0, got %f", score)
		}
		if len(indicators) != 0 {
			t.Errorf("expected no indicators, got %v", indicators)
		}
	})

	t.Run("reference layout triggers eight checks", func(t *testing.T) {
		t.Parallel()

		score, indicators := Score(reference.Default())
		if math.Abs(score-8.0) > 1e-9 {
			t.Errorf("expected score 8.0, got %f", score)
		}

		want := []string{
			"Consistent 2-space indentation",
			"Multiple descriptive comments (7 found)",
			"Extensive Bootstrap utility classes (8 types)",
			"Custom CSS with media queries",
			"Proper HTML5 structure with meta viewport",
			"CDN links for libraries",
			"Complex nested grid structure",
			"Accessibility and encoding attributes",
		}
		if !reflect.DeepEqual(indicators, want) {
			t.Errorf("expected indicators %v, got %v", want, indicators)
		}
	})

	t.Run("all checks triggered sums every weight", func(t *testing.T) {
		t.Parallel()

		code := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css" rel="stylesheet">
  <style>
    @media (max-width: 600px) { .hero { display: none; } }
  </style>
</head>
<body>
  <!-- one -->
  <!-- two -->
  <!-- three -->
  <header><section><article></article></section></header>
  <div class="container">
    <div class="row">
      <div class="col-6 bg-dark text-white mt-2 mb-2 p-2">
        <span class="badge"></span>
      </div>
    </div>
    <div class="row"></div>
  </div>
</body>
</html>`

		score, indicators := Score(code)
		if math.Abs(score-9.0) > 1e-9 {
			t.Errorf("expected score 9.0, got %f", score)
		}
		if len(indicators) != 10 {
			t.Errorf("expected 10 indicators, got %d: %v", len(indicators), indicators)
		}
	})

	t.Run("comment count below three does not trigger", func(t *testing.T) {
		t.Parallel()

		_, indicators := Score("<!-- a -->\n<!-- b -->")
		for _, label := range indicators {
			if label == "Multiple descriptive comments (2 found)" {
				t.Error("two comments should not trigger the comment check")
			}
		}
	})

	t.Run("multi-line comments count once", func(t *testing.T) {
		t.Parallel()

		code := "<!-- spans\nmultiple\nlines -->\n<!-- b -->\n<!-- c -->"
		_, indicators := Score(code)

		found := false
		for _, label := range indicators {
			if label == "Multiple descriptive comments (3 found)" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected comment check with 3 found, got %v", indicators)
		}
	})

	t.Run("kebab check requires a pure lowercase-hyphen class value", func(t *testing.T) {
		t.Parallel()

		hasKebab := func(code string) bool {
			_, indicators := Score(code)
			for _, label := range indicators {
				if label == "Consistent kebab-case naming" {
					return true
				}
			}
			return false
		}

		if !hasKebab(`<div class="hero-text"></div>`) {
			t.Error(`expected class="hero-text" to trigger kebab check`)
		}
		if hasKebab(`<div class="mt-4"></div>`) {
			t.Error(`class value with digits should not trigger kebab check`)
		}
		if hasKebab(`<div class="box shadow"></div>`) {
			t.Error(`class value with spaces should not trigger kebab check`)
		}
	})

	t.Run("nested grid requires two row div literals", func(t *testing.T) {
		t.Parallel()

		hasGrid := func(code string) bool {
			_, indicators := Score(code)
			for _, label := range indicators {
				if label == "Complex nested grid structure" {
					return true
				}
			}
			return false
		}

		if hasGrid(`<div class="row"></div>`) {
			t.Error("a single row should not trigger the grid check")
		}
		if !hasGrid(`<div class="row"></div><div class="row mt-2"></div>`) {
			t.Error("two rows should trigger the grid check")
		}
	})

	t.Run("indicators preserve battery order", func(t *testing.T) {
		t.Parallel()

		// Triggers the CDN check (position 8) and the indentation
		// check (position 1); indentation must be reported first.
		code := "  indented line\nsrc=\"https://cdn.jsdelivr.net/lib.js\""
		_, indicators := Score(code)

		want := []string{
			"Consistent 2-space indentation",
			"CDN links for libraries",
		}
		if !reflect.DeepEqual(indicators, want) {
			t.Errorf("expected %v, got %v", want, indicators)
		}
	})
}
