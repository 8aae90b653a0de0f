package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/bgricker/gtest2md/internal/config"
	"github.com/bgricker/gtest2md/internal/filter"
	"github.com/bgricker/gtest2md/internal/gtest"
	"github.com/bgricker/gtest2md/internal/output"
	"github.com/bgricker/gtest2md/internal/report"
	"github.com/bgricker/gtest2md/internal/xmltree"
)

// reportData bundles the extracted report with the diagnostics raised while reading it.
type reportData struct {
	report report.Report
	diags  *gtest.Diagnostics
}

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, "", err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := config.ApplyEnv(ctx, &cfg, nil); err != nil {
		return config.Config{}, "", err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, root, nil
}

// loadReport parses the report at path and extracts its content. The returned
// diagnostics are valid even when an error is returned.
func loadReport(ctx context.Context, path string, cfg config.Config) (reportData, error) {
	data := reportData{diags: gtest.NewDiagnostics()}

	opt, err := suiteFilter(ctx, cfg)
	if err != nil {
		return data, err
	}
	tree, err := xmltree.ParseFile(path)
	if err != nil {
		return data, err
	}
	data.report, err = gtest.Build(tree, path, data.diags, opt)
	return data, err
}

// suiteFilter compiles the configured suite patterns into a build option.
func suiteFilter(ctx context.Context, cfg config.Config) (gtest.Option, error) {
	only, err := filter.Compile(cfg.Suites)
	if err != nil {
		return nil, err
	}
	skip, err := filter.Compile(cfg.SkipSuites)
	if err != nil {
		return nil, err
	}

	log := clog.FromContext(ctx)
	return gtest.WithFilter(func(rep report.Report) report.Report {
		out := filter.Suites(rep, only, skip)
		if dropped := len(rep.Suites) - len(out.Suites); dropped > 0 {
			log.Debug("filtered test suites",
				"only", patternStrings(only),
				"skip", patternStrings(skip),
				"kept", len(out.Suites),
				"dropped", dropped)
		}
		return out
	}), nil
}

func patternStrings(patterns []filter.Pattern) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p.String())
	}
	return out
}

func warnings(diags *gtest.Diagnostics) []output.Warning {
	entries := diags.Entries()
	if len(entries) == 0 {
		return nil
	}
	out := make([]output.Warning, 0, len(entries))
	for _, e := range entries {
		out = append(out, output.Warning{Kind: string(e.Kind), Message: e.Message})
	}
	return out
}

func printWarnings(cmd *cobra.Command, cfg config.Config, diags *gtest.Diagnostics) {
	if cfg.Quiet {
		return
	}
	for _, msg := range diags.Messages() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
	}
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
