package output

import (
	"strconv"
	"strings"

	"github.com/bgricker/gtest2md/internal/report"
)

// Title opens every generated document.
const Title = "# Google Test Report \n## Summary\n\n"

const (
	iconPassed      = "✔️"
	iconNotExecuted = "⚠️"
	iconFailed      = "❌"
)

// Markdown returns the document for rep: the title, the summary table and one
// section per suite.
func Markdown(rep report.Report) string {
	var b strings.Builder
	b.WriteString(Title)
	writeSummary(&b, rep.Summary)
	for _, suite := range rep.Suites {
		writeSuite(&b, suite)
	}
	return b.String()
}

// Icon returns the status icon of an outcome.
func Icon(o report.Outcome) string {
	switch o {
	case report.OutcomePassed:
		return iconPassed
	case report.OutcomeNotExecuted:
		return iconNotExecuted
	default:
		return iconFailed
	}
}

func writeSummary(b *strings.Builder, s report.Summary) {
	b.WriteString("| Date | Time | Tests | Success | Fails | Disabled | Execution time |\n")
	b.WriteString("|:----:|:----:|:-----:|:-------:|:-----:|:--------:|---------------:|\n")
	b.WriteString("| " + s.Date + " | " + s.Time)
	writeCounts(b, s.Counts)
	b.WriteString(" | " + s.Duration + " sec |\n\n")
}

func writeSuite(b *strings.Builder, s report.Suite) {
	b.WriteString("## Testsuite: " + s.Name + "\n### Summary\n\n")
	b.WriteString("| Tests | Success | Fails | Disabled | Execution time |\n")
	b.WriteString("|:-----:|:-------:|:-----:|:--------:|---------------:|\n")
	// The data row starts with " | ", unlike the header rows.
	writeCounts(b, s.Counts)
	b.WriteString(" | " + s.Duration + " sec |\n\n")

	writeCases(b, s.Cases)
}

func writeCounts(b *strings.Builder, c report.Counts) {
	b.WriteString(" | " + span("DarkBlue", c.Tests))
	b.WriteString(" | " + span("DarkGreen", c.Success()))
	b.WriteString(" | " + span("DarkRed", c.Failures))
	b.WriteString(" | " + span("DarkOrange", c.Disabled))
}

func span(color string, n int) string {
	return `<span style="color:` + color + `">` + strconv.Itoa(n) + `</span>`
}

func writeCases(b *strings.Builder, cases []report.Case) {
	b.WriteString("### Testcases: \n\n")
	b.WriteString("| # | Name | Execution time | Status |\n")
	b.WriteString("|:-:|:-----|---------------:|:------:|\n")

	for _, c := range cases {
		b.WriteString("| " + strconv.Itoa(c.Number) + " | " + c.Name + failureFragment(c.Failures))
		b.WriteString(" | " + c.Duration + " sec | " + Icon(c.Outcome) + " |\n")
	}
	b.WriteString("\n")
}

func failureFragment(failures []string) string {
	if len(failures) == 0 {
		return ""
	}
	return "<br>" + strings.Join(failures, "")
}
