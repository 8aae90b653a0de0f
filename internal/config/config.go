package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// FileName is the optional config file looked up in the working directory.
const FileName = ".gtest2md.yml"

// Config captures CLI options sourced from config files, the environment or flags.
type Config struct {
	Format    string `yaml:"format"`
	Resources string `yaml:"resources"`

	Suites     []string `yaml:"suites"`
	SkipSuites []string `yaml:"skip_suites"`

	Quiet   bool `yaml:"quiet"`
	Verbose bool `yaml:"verbose"`
}

// Default returns the baseline configuration used when no flags or config file specify values.
func Default() Config {
	return Config{
		Format: FormatMarkdown,
	}
}

const (
	// FormatMarkdown renders the Markdown document.
	FormatMarkdown = "markdown"
	// FormatJSON renders the extracted report as JSON.
	FormatJSON = "json"
	// FormatTable renders a terminal summary table.
	FormatTable = "table"
)

// Load reads .gtest2md.yml from root when present. Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg = merge(cfg, fileCfg)
	return cfg, nil
}

// envValues mirrors the subset of Config that may be set from the environment.
// Booleans stay nil when unset so an explicit false still overrides the file.
type envValues struct {
	Format    string `env:"GTEST2MD_FORMAT"`
	Resources string `env:"GTEST2MD_RESOURCES"`
	Quiet     *bool  `env:"GTEST2MD_QUIET, noinit"`
	Verbose   *bool  `env:"GTEST2MD_VERBOSE, noinit"`
}

// ApplyEnv overlays environment variables resolved by lookuper onto cfg. A nil
// lookuper reads the process environment.
func ApplyEnv(ctx context.Context, cfg *Config, lookuper envconfig.Lookuper) error {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	var env envValues
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &env, Lookuper: lookuper}); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}
	*cfg = merge(*cfg, Config{
		Format:    env.Format,
		Resources: env.Resources,
	})
	if env.Quiet != nil {
		cfg.Quiet = *env.Quiet
	}
	if env.Verbose != nil {
		cfg.Verbose = *env.Verbose
	}
	return nil
}

func merge(base, override Config) Config {
	out := base

	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Resources != "" {
		out.Resources = override.Resources
	}
	if len(override.Suites) > 0 {
		out.Suites = append([]string{}, override.Suites...)
	}
	if len(override.SkipSuites) > 0 {
		out.SkipSuites = append([]string{}, override.SkipSuites...)
	}
	if override.Quiet {
		out.Quiet = true
	}
	if override.Verbose {
		out.Verbose = true
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.Resources.Set {
		cfg.Resources = flags.Resources.Value
	}
	if len(flags.Suites.Values) > 0 {
		cfg.Suites = append([]string{}, flags.Suites.Values...)
	}
	if len(flags.SkipSuites.Values) > 0 {
		cfg.SkipSuites = append([]string{}, flags.SkipSuites.Values...)
	}
	if flags.Quiet.Set {
		cfg.Quiet = flags.Quiet.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag was set explicitly.
type FlagValues struct {
	Format     StringFlag
	Resources  StringFlag
	Suites     SliceFlag
	SkipSuites SliceFlag
	Quiet      BoolFlag
	Verbose    BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// SliceFlag represents a slice flag and whether it captured values via CLI.
type SliceFlag struct {
	Values []string
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
