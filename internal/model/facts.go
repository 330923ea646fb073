package model

// Structure score criteria thresholds.
// A document needs at least MinRowCount row elements and MinColElements
// column elements for those criteria to count toward the structure score.
const (
	// MinRowCount is the minimum number of row-classed elements required.
	MinRowCount = 2

	// MinColElements is the minimum number of column-classed elements required.
	MinColElements = 6

	// MaxStructureScore is the number of structure criteria, and therefore
	// the maximum value Score can return.
	MaxStructureScore = 8
)

// StructureFacts is a fixed-shape record of facts extracted from a parsed
// HTML document. It is produced fresh per analysis and never mutated after
// creation; every field derives solely from the analyzed input text.
type StructureFacts struct {
	// HasDoctype is true if the trimmed input starts with the literal
	// case-sensitive prefix "<!DOCTYPE html>".
	HasDoctype bool `json:"has_doctype"`

	// HasBootstrapCSS is true if the raw text contains "bootstrap"
	// together with ".css". This is a textual containment check, not
	// an attribute-scoped one.
	HasBootstrapCSS bool `json:"has_bootstrap_css"`

	// HasBootstrapJS is true if the raw text contains "bootstrap"
	// together with ".js".
	HasBootstrapJS bool `json:"has_bootstrap_js"`

	// HasContainer is true if any element carries a class token
	// containing the substring "container".
	HasContainer bool `json:"has_container"`

	// RowCount is the number of elements whose class attribute carries
	// a token containing the substring "row".
	RowCount int `json:"row_count"`

	// ColElements is the number of elements whose class attribute carries
	// a token containing the substring "col-".
	ColElements int `json:"col_elements"`

	// HasCustomCSS is true if a literal "<style>" tag substring is present.
	HasCustomCSS bool `json:"has_custom_css"`

	// HasMediaQuery is true if the literal substring "@media" is present.
	HasMediaQuery bool `json:"has_media_query"`
}

// Score returns the number of satisfied structure criteria as an integer
// in [0, MaxStructureScore]. The eight criteria are: doctype, Bootstrap CSS,
// Bootstrap JS, container, RowCount >= MinRowCount, custom CSS, media query,
// and ColElements >= MinColElements.
func (f *StructureFacts) Score() int {
	criteria := []bool{
		f.HasDoctype,
		f.HasBootstrapCSS,
		f.HasBootstrapJS,
		f.HasContainer,
		f.RowCount >= MinRowCount,
		f.HasCustomCSS,
		f.HasMediaQuery,
		f.ColElements >= MinColElements,
	}

	score := 0
	for _, satisfied := range criteria {
		if satisfied {
			score++
		}
	}
	return score
}
