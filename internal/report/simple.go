package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/htmlcheck/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with a checklist layout
// and clear section formatting.
//
// Design decision: We use plain text with ASCII markers rather than ANSI
// colors because it works in all terminals and pipes cleanly to files.
type SimpleWriter struct {
	baseWriter

	// verbose enables the indicator list even when empty.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeScores(&sb, report)
	w.writeStructure(&sb, report)
	w.writeIndicators(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with input information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         HTMLCHECK REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Input:    %s\n", report.InputName))
	sb.WriteString(fmt.Sprintf("Digest:   sha3-256:%s\n", report.InputDigest))
	sb.WriteString(fmt.Sprintf("Analyzed: %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n")
}

// writeScores writes the three aggregate scores with their verdicts.
func (w *SimpleWriter) writeScores(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\nSCORES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Code Similarity:  %5.1f%%   -> %s\n",
		report.Similarity*100, report.MatchVerdict))
	sb.WriteString(fmt.Sprintf("AI Writing Score: %5.1f/10  -> %s\n",
		report.AIScore, report.AuthorshipVerdict))

	if report.StructureUnknown {
		sb.WriteString("Structure Score:  unknown (could not parse input)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Structure Score:  %d/%d\n",
			report.StructureScore, model.MaxStructureScore))
	}
	sb.WriteString("\n")
}

// writeStructure writes the structural checklist section.
func (w *SimpleWriter) writeStructure(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\nSTRUCTURE ANALYSIS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if report.StructureUnknown || report.Structure == nil {
		sb.WriteString("  Could not parse HTML structure\n\n")
		return
	}

	facts := report.Structure
	sb.WriteString(fmt.Sprintf("  [%s] DOCTYPE declaration\n", mark(facts.HasDoctype)))
	sb.WriteString(fmt.Sprintf("  [%s] Bootstrap CSS\n", mark(facts.HasBootstrapCSS)))
	sb.WriteString(fmt.Sprintf("  [%s] Bootstrap JS\n", mark(facts.HasBootstrapJS)))
	sb.WriteString(fmt.Sprintf("  [%s] Container element\n", mark(facts.HasContainer)))
	sb.WriteString(fmt.Sprintf("  [%s] Custom CSS\n", mark(facts.HasCustomCSS)))
	sb.WriteString(fmt.Sprintf("  [%s] Media queries\n", mark(facts.HasMediaQuery)))
	sb.WriteString(fmt.Sprintf("  Row elements:    %d (need %d)\n", facts.RowCount, model.MinRowCount))
	sb.WriteString(fmt.Sprintf("  Column elements: %d (need %d)\n", facts.ColElements, model.MinColElements))
	sb.WriteString("\n")
}

// writeIndicators writes the AI indicator section.
func (w *SimpleWriter) writeIndicators(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.AIIndicators) == 0 && !w.verbose {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\nAI INDICATORS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if len(report.AIIndicators) == 0 {
		sb.WriteString("  No strong AI indicators detected\n\n")
		return
	}

	for _, indicator := range report.AIIndicators {
		sb.WriteString(fmt.Sprintf("  * %s\n", indicator))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by htmlcheck\n")
	sb.WriteString("https://github.com/nao1215/htmlcheck\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// mark returns the checklist marker for a boolean fact.
func mark(ok bool) string {
	if ok {
		return "x"
	}
	return " "
}
