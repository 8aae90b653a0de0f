package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bgricker/gtest2md/internal/report"
)

// PrettyRenderer prints a terminal summary of a report.
type PrettyRenderer struct {
	out io.Writer
}

// NewPretty creates a PrettyRenderer writing to the provided writer.
func NewPretty(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

// RenderSummary prints one table row per suite followed by the report totals.
func (p *PrettyRenderer) RenderSummary(rep report.Report) error {
	if rep.Source != "" {
		if _, err := fmt.Fprintf(p.out, "Report %s (%s %s)\n", rep.Source, rep.Summary.Date, rep.Summary.Time); err != nil {
			return err
		}
	}

	table := newSummaryTable(p.out, []string{"#", "Suite", "Tests", "Success", "Fails", "Disabled", "Time"})
	for i, suite := range rep.Suites {
		row := []string{
			strconv.Itoa(i + 1),
			suite.Name,
			strconv.Itoa(suite.Tests),
			strconv.Itoa(suite.Success()),
			strconv.Itoa(suite.Failures),
			strconv.Itoa(suite.Disabled),
			suite.Duration + " sec",
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append suite %q: %w", suite.Name, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render summary table: %w", err)
	}

	passed, notRun, failed := countOutcomes(rep.Suites)
	s := rep.Summary
	_, err := fmt.Fprintf(p.out, "SUMMARY: %d tests, %d success, %d fails, %d disabled (%s sec); cases: %d passed, %d failed, %d not run\n",
		s.Tests, s.Success(), s.Failures, s.Disabled, s.Duration, passed, failed, notRun)
	return err
}

func countOutcomes(suites []report.Suite) (passed, notRun, failed int) {
	for _, suite := range suites {
		for _, c := range suite.Cases {
			switch c.Outcome {
			case report.OutcomePassed:
				passed++
			case report.OutcomeNotExecuted:
				notRun++
			default:
				failed++
			}
		}
	}
	return passed, notRun, failed
}

func newSummaryTable(w io.Writer, headers []string) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
