package main

import (
	"context"
	"log/slog"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/bgricker/gtest2md/internal/config"
)

// withLogger returns the command context carrying a logger that writes to the
// command's stderr.
func withLogger(cmd *cobra.Command, cfg config.Config) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := clog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return clog.WithLogger(ctx, logger)
}
