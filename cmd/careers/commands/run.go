package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/club-careers/internal/app"
	"github.com/riskibarqy/club-careers/internal/config"
	"github.com/riskibarqy/club-careers/internal/observability"
	"github.com/riskibarqy/club-careers/internal/platform/id"
	"github.com/riskibarqy/club-careers/internal/usecase"
	"github.com/spf13/cobra"
)

type runOptions struct {
	club    string
	format  string
	output  string
	workers int
	dryRun  bool
}

var runFlags runOptions

func init() {
	flags := runCmd.Flags()
	flags.StringVar(&runFlags.club, "club", "", "Club of interest. Overrides CLUB_NAME.")
	flags.StringVar(&runFlags.format, "format", "", "Output sink: csv, json, table, postgres or memory. Overrides OUTPUT_FORMAT.")
	flags.StringVarP(&runFlags.output, "output", "o", "", "Output file path. Empty or - writes to stdout.")
	flags.IntVar(&runFlags.workers, "workers", 0, "Concurrent career page fetches. Overrides FETCH_MAX_WORKERS.")
	flags.BoolVar(&runFlags.dryRun, "dry-run", false, "Reconstruct the timeline without writing it.")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--club <name>] [--format csv|json|table|postgres|memory] [--output <path>]",
	Short: "Scrapes every player's career and writes the club's reconstructed timeline.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyRunFlags(&cfg); err != nil {
			return err
		}

		logger := newLogger(cfg).With("run_id", id.NewRunID())
		defer func() { _ = logger.Sync() }()

		shutdownTracing, err := observability.InitUptrace(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				logger.Warn("shutdown tracing failed", "error", err)
			}
		}()

		ctx := cmd.Context()
		a, err := app.New(ctx, cfg, logger, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Close(); err != nil {
				logger.Warn("close app failed", "error", err)
			}
		}()

		_, err = a.Careers.Run(ctx, usecase.RunInput{
			Club:       runFlags.club,
			MaxWorkers: cfg.FetchMaxWorkers,
			DryRun:     runFlags.dryRun,
		})
		return err
	},
}

func applyRunFlags(cfg *config.Config) error {
	if runFlags.format != "" {
		format, err := config.ParseOutputFormat(runFlags.format)
		if err != nil {
			return err
		}
		cfg.OutputFormat = format
	}
	if runFlags.output != "" {
		cfg.OutputPath = runFlags.output
	}
	if runFlags.workers != 0 {
		if err := config.ValidateFetchMaxWorkers(runFlags.workers); err != nil {
			return fmt.Errorf("--workers: %w", err)
		}
		cfg.FetchMaxWorkers = runFlags.workers
	}
	if runFlags.club != "" {
		cfg.Club = runFlags.club
	}
	return nil
}
