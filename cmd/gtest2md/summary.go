package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgricker/gtest2md/internal/config"
	"github.com/bgricker/gtest2md/internal/discovery"
	"github.com/bgricker/gtest2md/internal/output"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary REPORT_FILE",
		Short: "Print the test counts of a gtest XML report",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := withLogger(cmd, cfg)

	reportPath, err := discovery.Report(root, args[0])
	if err != nil {
		return err
	}

	data, err := loadReport(ctx, reportPath, cfg)
	printWarnings(cmd, cfg, data.diags)
	if err != nil {
		return err
	}
	data.report.Source = args[0]

	switch strings.ToLower(cfg.Format) {
	case config.FormatTable, config.FormatMarkdown:
		return output.NewPretty(cmd.OutOrStdout()).RenderSummary(data.report)
	case config.FormatJSON:
		doc := output.Document{Report: data.report, Warnings: warnings(data.diags)}
		return output.NewJSON(cmd.OutOrStdout()).Render(doc)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
