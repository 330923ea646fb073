package structure

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/nao1215/htmlcheck/internal/model"
)

// doctypePrefix is matched case-sensitively against the trimmed input.
const doctypePrefix = "<!DOCTYPE html>"

// ErrParse is returned when no document tree can be built from the input.
// Callers must treat the structure as unknown rather than failing the
// whole analysis.
var ErrParse = errors.New("cannot build a document tree from input")

// Analyze parses code and extracts structure facts.
//
// Parsing is best-effort via goquery (golang.org/x/net/html underneath),
// which tolerates unclosed tags and other malformed markup. Binary input
// that is not valid UTF-8 text is rejected with ErrParse; everything else
// yields a facts record, including empty input and non-HTML text.
func Analyze(code string) (*model.StructureFacts, error) {
	if !utf8.ValidString(code) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8 text", ErrParse)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(code))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	facts := &model.StructureFacts{
		HasDoctype:      strings.HasPrefix(strings.TrimSpace(code), doctypePrefix),
		HasBootstrapCSS: strings.Contains(code, "bootstrap") && strings.Contains(code, ".css"),
		HasBootstrapJS:  strings.Contains(code, "bootstrap") && strings.Contains(code, ".js"),
		HasCustomCSS:    strings.Contains(code, "<style>"),
		HasMediaQuery:   strings.Contains(code, "@media"),
	}

	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if hasClassToken(class, "container") {
			facts.HasContainer = true
		}
		if hasClassToken(class, "row") {
			facts.RowCount++
		}
		if hasClassToken(class, "col-") {
			facts.ColElements++
		}
	})

	return facts, nil
}

// hasClassToken reports whether any whitespace-separated token of a class
// attribute value contains fragment as a substring. Matching tokens rather
// than the whole attribute keeps "container" from matching across token
// boundaries, while still catching variants like "container-fluid".
func hasClassToken(class, fragment string) bool {
	for _, token := range strings.Fields(class) {
		if strings.Contains(token, fragment) {
			return true
		}
	}
	return false
}
