package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-careers/external/soccerbase"
	"github.com/riskibarqy/club-careers/internal/config"
	"github.com/riskibarqy/club-careers/internal/domain/career"
	"github.com/riskibarqy/club-careers/internal/domain/timeline"
	"github.com/riskibarqy/club-careers/internal/infrastructure/export"
	"github.com/riskibarqy/club-careers/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-careers/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-careers/internal/platform/logging"
	"github.com/riskibarqy/club-careers/internal/platform/resilience"
	"github.com/riskibarqy/club-careers/internal/usecase"
)

// App is the wired dependency graph for one CLI invocation.
type App struct {
	Config     config.Config
	Logger     *logging.Logger
	Soccerbase *soccerbase.Client
	Careers    *usecase.CareerService
	Sink       career.Sink

	db *sqlx.DB
}

// New wires the scraper, the reconstruction service and the sink selected by
// cfg.OutputFormat. stdout receives file-less sink output.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger, stdout io.Writer) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	client := soccerbase.NewClient(soccerbase.ClientConfig{
		BaseURL:          cfg.SoccerbaseBaseURL,
		TeamID:           cfg.SoccerbaseTeamID,
		SeasonID:         cfg.SoccerbaseSeasonID,
		Timeout:          cfg.SoccerbaseTimeout,
		MaxRetries:       cfg.SoccerbaseMaxRetries,
		DirectoryWorkers: cfg.DirectoryMaxWorkers,
		CacheTTL:         cfg.SoccerbaseCacheTTL,
		Logger:           logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SoccerbaseCircuitEnabled,
			FailureThreshold: cfg.SoccerbaseCircuitFailureCount,
			OpenTimeout:      cfg.SoccerbaseCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SoccerbaseCircuitHalfOpenMaxReq,
		},
	})

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Soccerbase: client,
	}

	sink, err := a.newSink(ctx, stdout)
	if err != nil {
		return nil, err
	}
	a.Sink = sink
	a.Careers = usecase.NewCareerService(client, client, sink, RulesFromConfig(cfg), logger.Named("careers"))

	return a, nil
}

// RulesFromConfig starts from the embedded reconciliation tables and applies
// any configured overrides.
func RulesFromConfig(cfg config.Config) timeline.Rules {
	rules := timeline.DefaultRules()
	if cfg.Club != "" {
		rules.Club = cfg.Club
	}
	if cfg.TraineeRoster != nil {
		rules.TraineeRoster = cfg.TraineeRoster
	}
	if cfg.Corrections != nil {
		rules.Corrections = cfg.Corrections
	}
	return rules
}

func (a *App) newSink(ctx context.Context, stdout io.Writer) (career.Sink, error) {
	dest := export.Destination{Path: a.Config.OutputPath, Stdout: stdout}

	switch a.Config.OutputFormat {
	case config.OutputCSV, "":
		return export.NewCSVWriter(dest), nil
	case config.OutputJSON:
		return export.NewJSONWriter(dest), nil
	case config.OutputTable:
		return export.NewTableWriter(dest), nil
	case config.OutputMemory:
		return memory.NewStintRepository(), nil
	case config.OutputPostgres:
		db, err := openDB(ctx, a.Config)
		if err != nil {
			return nil, err
		}
		a.db = db
		return postgres.NewStintRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", a.Config.OutputFormat)
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
