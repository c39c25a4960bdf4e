package commands

import (
	"github.com/riskibarqy/club-careers/internal/app"
	"github.com/riskibarqy/club-careers/internal/config"
	"github.com/riskibarqy/club-careers/internal/infrastructure/export"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seasonsCmd)
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Lists the season ids offered by the club's season selector.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Season listing never writes a timeline.
		cfg.OutputFormat = config.OutputMemory

		logger := newLogger(cfg)
		defer func() { _ = logger.Sync() }()

		a, err := app.New(cmd.Context(), cfg, logger, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer a.Close()

		seasons, err := a.Soccerbase.ListSeasons(cmd.Context())
		if err != nil {
			return err
		}
		return export.WriteSeasons(cmd.OutOrStdout(), seasons)
	},
}
