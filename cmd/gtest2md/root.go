package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gtest2md",
		Short:         "gtest2md converts Google Test XML reports to Markdown",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("format", "", "output format (markdown|json for generate, table|json for summary)")
	persistent.String("resources", "", "directory whose entries are copied next to the generated document")
	persistent.StringArray("suite", nil, "include only matching test suites (repeatable)")
	persistent.StringArray("skip-suite", nil, "exclude matching test suites (repeatable)")
	persistent.BoolP("quiet", "q", false, "do not print report warnings")
	persistent.BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newSummaryCmd())

	return cmd
}
