package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/bgricker/gtest2md/internal/assets"
	"github.com/bgricker/gtest2md/internal/config"
	"github.com/bgricker/gtest2md/internal/discovery"
	"github.com/bgricker/gtest2md/internal/gtest"
	"github.com/bgricker/gtest2md/internal/output"
	"github.com/bgricker/gtest2md/internal/xmltree"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate REPORT_FILE OUTPUT_FILE",
		Short: "Convert a gtest XML report into a Markdown document",
		Long: `Convert a gtest XML report into a Markdown document.

  REPORT_FILE: Gtest xml report.
  OUTPUT_FILE: Path to the output file.`,
		Args: cobra.ExactArgs(2),
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := withLogger(cmd, cfg)
	log := clog.FromContext(ctx)

	format := strings.ToLower(cfg.Format)
	if format != config.FormatMarkdown && format != config.FormatJSON {
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}

	reportPath, err := discovery.Report(root, args[0])
	if err != nil {
		return err
	}
	destFile, destDir, err := discovery.Destination(root, args[1])
	if err != nil {
		return err
	}

	resources, err := discovery.Resources(resolvePath(root, cfg.Resources))
	if err != nil {
		return err
	}
	if err := assets.Copy(ctx, resources, destDir); err != nil {
		return err
	}

	log.Info("start generation", "input", reportPath, "output", destFile)
	doc, diags, err := renderDocument(ctx, reportPath, cfg, format)
	printWarnings(cmd, cfg, diags)
	if err != nil {
		return err
	}

	if err := os.WriteFile(destFile, doc, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", destFile, err)
	}
	log.Info("report generated", "output", destFile, "warnings", diags.Len())
	return nil
}

// renderDocument converts the report at path into the requested format. The
// returned diagnostics are valid even when an error is returned.
func renderDocument(ctx context.Context, path string, cfg config.Config, format string) ([]byte, *gtest.Diagnostics, error) {
	diags := gtest.NewDiagnostics()

	opt, err := suiteFilter(ctx, cfg)
	if err != nil {
		return nil, diags, err
	}
	tree, err := xmltree.ParseFile(path)
	if err != nil {
		return nil, diags, err
	}

	if format == config.FormatJSON {
		rep, err := gtest.Build(tree, path, diags, opt)
		if err != nil {
			return nil, diags, err
		}
		var buf bytes.Buffer
		if err := output.NewJSON(&buf).Render(output.Document{Report: rep, Warnings: warnings(diags)}); err != nil {
			return nil, diags, err
		}
		return buf.Bytes(), diags, nil
	}

	doc, err := gtest.Generate(tree, path, diags, opt)
	if err != nil {
		return nil, diags, err
	}
	return []byte(doc), diags, nil
}
