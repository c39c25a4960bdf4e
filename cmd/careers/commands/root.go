package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/riskibarqy/club-careers/internal/config"
	"github.com/riskibarqy/club-careers/internal/platform/logging"
	"github.com/spf13/cobra"
)

var (
	logLevelFlag  string
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:           "careers",
	Short:         "careers reconstructs the career timelines of every player who appeared for a club.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Overrides LOG_LEVEL (debug, info, warn, error).")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Overrides LOG_FORMAT (json or console).")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the persistent flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logging.ParseLevel(logLevelFlag)
	}
	if logFormatFlag != "" {
		cfg.LogFormat = logging.ParseFormat(logFormatFlag)
	}
	return cfg, nil
}

// newLogger writes to stderr so stdout stays free for exported rows.
func newLogger(cfg config.Config) *logging.Logger {
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	return logger
}
