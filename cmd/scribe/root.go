package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spetersoncode/scribe/blog"
	"github.com/spetersoncode/scribe/internal/logging"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs. Tests replace build.
type app struct {
	cfg    *Config
	logger *slog.Logger
	build  func(cfg *Config, logger *slog.Logger) (*blog.Registry, error)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "scribe",
		Short: "Scribe writes blog posts from a topic",
		Long: `Scribe runs a two-step generation pipeline: it asks a language model for a
title for your topic, then for a full blog post based on that title.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newWriteCmd(a),
		newGraphCmd(a),
		newMCPCmd(a),
	)
	return root
}

// Execute runs the CLI with configuration from the environment.
func Execute() {
	cfg := LoadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := &app{cfg: cfg, logger: logging.New(level), build: buildRegistry}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
