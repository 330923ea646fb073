package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/htmlcheck/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, for example as a
// grading note attached to a submission.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and GitHub-flavored
// markdown alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeScores(md, report)
	w.writeStructure(md, report)
	w.writeIndicators(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with input information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("htmlcheck Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", "`" + report.InputName + "`"},
			{"Digest", "`sha3-256:" + report.InputDigest + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeScores writes the score summary and the verdict alert.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Scores")
	md.PlainText("")

	structureScore := fmt.Sprintf("%d/%d", report.StructureScore, model.MaxStructureScore)
	if report.StructureUnknown {
		structureScore = "unknown"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value", "Verdict"},
		Rows: [][]string{
			{"Code Similarity", fmt.Sprintf("%.1f%%", report.Similarity*100), report.MatchVerdict},
			{"AI Writing Score", fmt.Sprintf("%.1f/10", report.AIScore), report.AuthorshipVerdict},
			{"Structure Score", structureScore, "-"},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// writeAlert writes an appropriate alert based on the verdicts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.AnalysisReport) {
	switch report.Authorship() {
	case model.AuthorshipLikelyAI:
		md.Warningf("AI writing score %.1f/10: this submission is highly likely AI-generated.", report.AIScore)
	case model.AuthorshipPossiblyAssisted:
		md.Importantf("AI writing score %.1f/10: this submission is possibly AI-assisted.", report.AIScore)
	default:
		md.Note("Few AI-writing indicators: this submission is likely human-written.")
	}
	md.PlainText("")

	if report.Match() == model.MatchExcellent {
		md.Tipf("Similarity %.1f%%: excellent match with the reference layout.", report.Similarity*100)
		md.PlainText("")
	}
}

// writeStructure writes the structural checklist section.
func (w *MarkdownWriter) writeStructure(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Structure Analysis")
	md.PlainText("")

	if report.StructureUnknown || report.Structure == nil {
		md.Caution("Could not parse the HTML structure; structural checks were skipped.")
		md.PlainText("")
		return
	}

	facts := report.Structure
	md.Table(markdown.TableSet{
		Header: []string{"Criterion", "Result"},
		Rows: [][]string{
			{"DOCTYPE declaration", checkmark(facts.HasDoctype)},
			{"Bootstrap CSS", checkmark(facts.HasBootstrapCSS)},
			{"Bootstrap JS", checkmark(facts.HasBootstrapJS)},
			{"Container element", checkmark(facts.HasContainer)},
			{"Row elements", strconv.Itoa(facts.RowCount)},
			{"Column elements", strconv.Itoa(facts.ColElements)},
			{"Custom CSS", checkmark(facts.HasCustomCSS)},
			{"Media queries", checkmark(facts.HasMediaQuery)},
		},
	})
	md.PlainText("")
}

// writeIndicators writes the AI indicator section.
func (w *MarkdownWriter) writeIndicators(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("AI Indicators")
	md.PlainText("")

	if len(report.AIIndicators) == 0 {
		md.PlainText("No strong AI indicators detected.")
		md.PlainText("")
		return
	}

	md.BulletList(report.AIIndicators...)
	md.PlainText("")
}

// checkmark renders a boolean fact for the markdown table.
func checkmark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
