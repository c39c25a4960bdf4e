package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/club-careers/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("OUTPUT_FORMAT", "")
	t.Setenv("FETCH_MAX_WORKERS", "")
	t.Setenv("CLUB_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Club != "Tranmere" {
		t.Fatalf("unexpected Club: %q", cfg.Club)
	}
	if cfg.SoccerbaseTeamID != 2598 || cfg.SoccerbaseSeasonID != 155 {
		t.Fatalf("unexpected soccerbase ids: team=%d season=%d", cfg.SoccerbaseTeamID, cfg.SoccerbaseSeasonID)
	}
	if cfg.FetchMaxWorkers != 30 {
		t.Fatalf("unexpected FetchMaxWorkers: %d", cfg.FetchMaxWorkers)
	}
	if cfg.OutputFormat != OutputCSV {
		t.Fatalf("unexpected OutputFormat: %q", cfg.OutputFormat)
	}
	if cfg.SoccerbaseTimeout != 20*time.Second {
		t.Fatalf("unexpected SoccerbaseTimeout: %s", cfg.SoccerbaseTimeout)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("OUTPUT_FORMAT", "postgres")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when OUTPUT_FORMAT=postgres without DB_URL")
	}
}

func TestLoad_FetchWorkersBounds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FETCH_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for FETCH_MAX_WORKERS=0")
	}
}

func TestLoad_RulesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("TRAINEE_ROSTER", "Jane Doe, John Roe")
	t.Setenv("CAREER_CORRECTIONS", "80:Everton@2019-08-15,81:Chester")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.TraineeRoster) != 2 || cfg.TraineeRoster[1] != "John Roe" {
		t.Fatalf("unexpected TraineeRoster: %v", cfg.TraineeRoster)
	}
	if len(cfg.Corrections) != 2 {
		t.Fatalf("unexpected Corrections: %+v", cfg.Corrections)
	}
	first := cfg.Corrections[0]
	if first.PlayerID != "80" || first.PrevClub != "Everton" || first.DateJoined == nil || first.DateJoined.Format("2006-01-02") != "2019-08-15" {
		t.Fatalf("unexpected first correction: %+v", first)
	}
	if cfg.Corrections[1].DateJoined != nil || cfg.Corrections[1].PrevClub != "Chester" {
		t.Fatalf("unexpected second correction: %+v", cfg.Corrections[1])
	}
}

func TestParseCorrections_Invalid(t *testing.T) {
	cases := []string{
		"80",
		"80:",
		":Everton",
		"80:Everton@15/08/2019",
	}
	for _, raw := range cases {
		if _, err := parseCorrections(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	if got, err := ParseOutputFormat(" JSON "); err != nil || got != OutputJSON {
		t.Fatalf("unexpected parse result: %q err=%v", got, err)
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
