package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/club-careers/internal/domain/career"
	"github.com/riskibarqy/club-careers/internal/platform/logging"
)

const (
	OutputCSV      = "csv"
	OutputJSON     = "json"
	OutputTable    = "table"
	OutputPostgres = "postgres"
	OutputMemory   = "memory"
)

// Config stores runtime configuration for a reconstruction run.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFormat      logging.Format

	Club string
	// TraineeRoster and Corrections are nil when the embedded defaults apply.
	TraineeRoster []string
	Corrections   []career.Correction

	SoccerbaseBaseURL               string
	SoccerbaseTeamID                int
	SoccerbaseSeasonID              int
	SoccerbaseTimeout               time.Duration
	SoccerbaseMaxRetries            int
	SoccerbaseCacheTTL              time.Duration
	SoccerbaseCircuitEnabled        bool
	SoccerbaseCircuitFailureCount   int
	SoccerbaseCircuitOpenTimeout    time.Duration
	SoccerbaseCircuitHalfOpenMaxReq int

	FetchMaxWorkers     int
	DirectoryMaxWorkers int

	OutputFormat string
	OutputPath   string

	DBURL                   string
	DBDisablePreparedBinary bool

	UptraceEnabled bool
	UptraceDSN     string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	club := strings.TrimSpace(getEnv("CLUB_NAME", "Tranmere"))

	// An explicitly empty table clears the embedded default; an unset one keeps it.
	var roster []string
	if raw, ok := os.LookupEnv("TRAINEE_ROSTER"); ok {
		roster = splitCSV(raw)
	}
	var corrections []career.Correction
	if raw, ok := os.LookupEnv("CAREER_CORRECTIONS"); ok {
		corrections, err = parseCorrections(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse CAREER_CORRECTIONS: %w", err)
		}
	}

	soccerbaseTeamID, err := getEnvAsInt("SOCCERBASE_TEAM_ID", 2598)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_TEAM_ID: %w", err)
	}
	if soccerbaseTeamID <= 0 {
		return Config{}, fmt.Errorf("SOCCERBASE_TEAM_ID must be > 0")
	}
	soccerbaseSeasonID, err := getEnvAsInt("SOCCERBASE_SEASON_ID", 155)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_SEASON_ID: %w", err)
	}
	if soccerbaseSeasonID <= 0 {
		return Config{}, fmt.Errorf("SOCCERBASE_SEASON_ID must be > 0")
	}
	soccerbaseTimeout, err := time.ParseDuration(getEnv("SOCCERBASE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_TIMEOUT: %w", err)
	}
	if soccerbaseTimeout <= 0 {
		return Config{}, fmt.Errorf("SOCCERBASE_TIMEOUT must be > 0")
	}
	soccerbaseMaxRetries, err := getEnvAsInt("SOCCERBASE_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_MAX_RETRIES: %w", err)
	}
	if soccerbaseMaxRetries < 0 {
		return Config{}, fmt.Errorf("SOCCERBASE_MAX_RETRIES must be >= 0")
	}
	soccerbaseCacheTTL, err := time.ParseDuration(getEnv("SOCCERBASE_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_CACHE_TTL: %w", err)
	}
	if soccerbaseCacheTTL < 0 {
		return Config{}, fmt.Errorf("SOCCERBASE_CACHE_TTL must be >= 0")
	}
	soccerbaseCircuitEnabled, err := strconv.ParseBool(getEnv("SOCCERBASE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_CIRCUIT_ENABLED: %w", err)
	}
	soccerbaseCircuitFailureCount, err := getEnvAsInt("SOCCERBASE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if soccerbaseCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SOCCERBASE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	soccerbaseCircuitOpenTimeout, err := time.ParseDuration(getEnv("SOCCERBASE_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if soccerbaseCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SOCCERBASE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	soccerbaseCircuitHalfOpenMaxReq, err := getEnvAsInt("SOCCERBASE_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERBASE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if soccerbaseCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SOCCERBASE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	fetchMaxWorkers, err := getEnvAsInt("FETCH_MAX_WORKERS", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_MAX_WORKERS: %w", err)
	}
	if err := ValidateFetchMaxWorkers(fetchMaxWorkers); err != nil {
		return Config{}, err
	}
	directoryMaxWorkers, err := getEnvAsInt("DIRECTORY_MAX_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_MAX_WORKERS: %w", err)
	}
	if directoryMaxWorkers < 1 {
		return Config{}, fmt.Errorf("DIRECTORY_MAX_WORKERS must be >= 1")
	}

	outputFormat, err := ParseOutputFormat(getEnv("OUTPUT_FORMAT", OutputCSV))
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if outputFormat == OutputPostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when OUTPUT_FORMAT=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    strings.TrimSpace(getEnv("APP_SERVICE_NAME", "club-careers")),
		ServiceVersion: strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		LogLevel:       logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:      logging.ParseFormat(getEnv("APP_LOG_FORMAT", string(logging.FormatJSON))),

		Club:          club,
		TraineeRoster: roster,
		Corrections:   corrections,

		SoccerbaseBaseURL:               strings.TrimSpace(getEnv("SOCCERBASE_BASE_URL", "https://www.soccerbase.com")),
		SoccerbaseTeamID:                soccerbaseTeamID,
		SoccerbaseSeasonID:              soccerbaseSeasonID,
		SoccerbaseTimeout:               soccerbaseTimeout,
		SoccerbaseMaxRetries:            soccerbaseMaxRetries,
		SoccerbaseCacheTTL:              soccerbaseCacheTTL,
		SoccerbaseCircuitEnabled:        soccerbaseCircuitEnabled,
		SoccerbaseCircuitFailureCount:   soccerbaseCircuitFailureCount,
		SoccerbaseCircuitOpenTimeout:    soccerbaseCircuitOpenTimeout,
		SoccerbaseCircuitHalfOpenMaxReq: soccerbaseCircuitHalfOpenMaxReq,

		FetchMaxWorkers:     fetchMaxWorkers,
		DirectoryMaxWorkers: directoryMaxWorkers,

		OutputFormat: outputFormat,
		OutputPath:   strings.TrimSpace(getEnv("OUTPUT_PATH", "")),

		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,
	}, nil
}

// ParseOutputFormat validates a sink name from env or a CLI flag.
// MaxFetchWorkers bounds the career fetch pool.
const MaxFetchWorkers = 256

func ValidateFetchMaxWorkers(n int) error {
	if n < 1 || n > MaxFetchWorkers {
		return fmt.Errorf("FETCH_MAX_WORKERS must be between 1 and %d", MaxFetchWorkers)
	}
	return nil
}

func ParseOutputFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case OutputCSV, OutputJSON, OutputTable, OutputPostgres, OutputMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid OUTPUT_FORMAT %q: valid values are %s, %s, %s, %s, %s",
			v, OutputCSV, OutputJSON, OutputTable, OutputPostgres, OutputMemory)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseCorrections reads "player_id:prev_club[@YYYY-MM-DD]" items.
func parseCorrections(raw string) ([]career.Correction, error) {
	items := splitCSV(raw)
	out := make([]career.Correction, 0, len(items))
	for _, item := range items {
		id, rest, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("invalid correction %q, expected player_id:prev_club[@YYYY-MM-DD]", item)
		}

		correction := career.Correction{
			PlayerID: strings.TrimSpace(id),
			PrevClub: strings.TrimSpace(rest),
		}
		if club, date, hasDate := strings.Cut(rest, "@"); hasDate {
			joined, err := time.Parse("2006-01-02", strings.TrimSpace(date))
			if err != nil {
				return nil, fmt.Errorf("invalid date in correction %q: %w", item, err)
			}
			correction.PrevClub = strings.TrimSpace(club)
			correction.DateJoined = &joined
		}
		if err := correction.Validate(); err != nil {
			return nil, fmt.Errorf("invalid correction %q: %w", item, err)
		}

		out = append(out, correction)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
