package indicator

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxScore is the clamp ceiling for the aggregate indicator score.
const MaxScore = 10.0

var (
	// indentPattern matches two whitespace characters at a line start.
	indentPattern = regexp.MustCompile(`(?m)^\s{2}`)

	// commentPattern matches HTML comment spans non-greedily; spans may
	// cross line boundaries.
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

	// kebabPattern matches a class attribute whose entire value is
	// lowercase letters and hyphens.
	kebabPattern = regexp.MustCompile(`class="[a-z-]+"`)
)

// bootstrapFragments are the utility-class name fragments counted by the
// Bootstrap usage check. Containment is checked against the whole raw text.
var bootstrapFragments = []string{"container", "row", "col-", "bg-", "text-", "mt-", "mb-", "p-"}

// check is one entry of the indicator battery: a predicate with a fixed
// weight and a label. eval reports whether the check triggered and returns
// the label, which may interpolate a count computed during evaluation.
type check struct {
	name   string
	weight float64
	eval   func(code string) (triggered bool, label string)
}

// battery is the ordered list of indicator checks. The order is part of
// the contract: triggered labels are reported in exactly this order.
var battery = []check{
	{
		name:   "two_space_indent",
		weight: 1,
		eval: func(code string) (bool, string) {
			return indentPattern.MatchString(code), "Consistent 2-space indentation"
		},
	},
	{
		name:   "descriptive_comments",
		weight: 1.5,
		eval: func(code string) (bool, string) {
			n := len(commentPattern.FindAllString(code, -1))
			return n >= 3, fmt.Sprintf("Multiple descriptive comments (%d found)", n)
		},
	},
	{
		name:   "semantic_elements",
		weight: 0.5,
		eval: func(code string) (bool, string) {
			found := strings.Contains(code, "<header>") ||
				strings.Contains(code, "<section>") ||
				strings.Contains(code, "<article>")
			return found, "Semantic HTML5 elements"
		},
	},
	{
		name:   "bootstrap_utilities",
		weight: 1,
		eval: func(code string) (bool, string) {
			n := 0
			for _, fragment := range bootstrapFragments {
				if strings.Contains(code, fragment) {
					n++
				}
			}
			return n >= 6, fmt.Sprintf("Extensive Bootstrap utility classes (%d types)", n)
		},
	},
	{
		name:   "custom_media_css",
		weight: 1,
		eval: func(code string) (bool, string) {
			found := strings.Contains(code, "<style>") && strings.Contains(code, "@media")
			return found, "Custom CSS with media queries"
		},
	},
	{
		name:   "kebab_case_classes",
		weight: 0.5,
		eval: func(code string) (bool, string) {
			return kebabPattern.MatchString(code), "Consistent kebab-case naming"
		},
	},
	{
		name:   "html5_scaffolding",
		weight: 1,
		eval: func(code string) (bool, string) {
			found := strings.Contains(code, "<!DOCTYPE html>") && strings.Contains(code, "viewport")
			return found, "Proper HTML5 structure with meta viewport"
		},
	},
	{
		name:   "cdn_links",
		weight: 1,
		eval: func(code string) (bool, string) {
			found := strings.Contains(code, "cdn.jsdelivr.net") ||
				strings.Contains(code, "cdnjs.cloudflare.com")
			return found, "CDN links for libraries"
		},
	},
	{
		name:   "nested_grid",
		weight: 1,
		eval: func(code string) (bool, string) {
			return strings.Count(code, `<div class="row`) >= 2, "Complex nested grid structure"
		},
	},
	{
		name:   "accessibility_attrs",
		weight: 0.5,
		eval: func(code string) (bool, string) {
			found := strings.Contains(code, `lang="en"`) && strings.Contains(code, `charset="UTF-8"`)
			return found, "Accessibility and encoding attributes"
		},
	},
}

// Score folds the battery over code and returns the aggregate score
// (clamped at MaxScore) together with the triggered labels in battery order.
//
// The function is pure and total: empty input yields score 0 and an empty
// indicator list.
func Score(code string) (float64, []string) {
	score := 0.0
	indicators := make([]string, 0, len(battery))

	for _, c := range battery {
		triggered, label := c.eval(code)
		if !triggered {
			continue
		}
		score += c.weight
		indicators = append(indicators, label)
	}

	return min(score, MaxScore), indicators
}
