package main

import (
	"fmt"

	"github.com/bgricker/gtest2md/internal/config"
	"github.com/spf13/cobra"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return values, fmt.Errorf("parse --format: %w", err)
		}
		values.Format = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("resources") {
		v, err := flags.GetString("resources")
		if err != nil {
			return values, fmt.Errorf("parse --resources: %w", err)
		}
		values.Resources = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("suite") {
		v, err := flags.GetStringArray("suite")
		if err != nil {
			return values, fmt.Errorf("parse --suite: %w", err)
		}
		values.Suites = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("skip-suite") {
		v, err := flags.GetStringArray("skip-suite")
		if err != nil {
			return values, fmt.Errorf("parse --skip-suite: %w", err)
		}
		values.SkipSuites = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("quiet") {
		v, err := flags.GetBool("quiet")
		if err != nil {
			return values, fmt.Errorf("parse --quiet: %w", err)
		}
		values.Quiet = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return values, fmt.Errorf("parse --verbose: %w", err)
		}
		values.Verbose = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}
