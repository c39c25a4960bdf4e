package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/club-careers/internal/domain/career"
	"github.com/riskibarqy/club-careers/internal/domain/timeline"
	"github.com/riskibarqy/club-careers/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultFetchWorkers = 30
	maxFetchWorkers     = 256
)

type RunInput struct {
	// Club overrides the configured club of interest when set.
	Club       string `validate:"omitempty,max=128"`
	MaxWorkers int    `validate:"gte=0,lte=256"`
	// DryRun reconstructs the timeline without writing to the sink.
	DryRun bool
}

type RunResult struct {
	Club     string
	Stints   []career.Stint
	Report   timeline.Report
	Written  bool
	Duration time.Duration
}

type CareerService struct {
	directory career.Directory
	feed      career.Feed
	sink      career.Sink
	rules     timeline.Rules
	logger    *logging.Logger
	validator *validator.Validate
}

func NewCareerService(
	directory career.Directory,
	feed career.Feed,
	sink career.Sink,
	rules timeline.Rules,
	logger *logging.Logger,
) *CareerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CareerService{
		directory: directory,
		feed:      feed,
		sink:      sink,
		rules:     rules,
		logger:    logger,
		validator: validator.New(),
	}
}

// Run executes one full pass: directory, per-player fetch, reconstruction and
// the sink write. Nothing is written when the run halts.
func (s *CareerService) Run(ctx context.Context, input RunInput) (RunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.Run")
	defer span.End()

	started := time.Now()
	if err := s.validator.StructCtx(ctx, input); err != nil {
		return RunResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.directory == nil || s.feed == nil {
		return RunResult{}, fmt.Errorf("%w: career source is not configured", ErrDependencyUnavailable)
	}
	if s.sink == nil && !input.DryRun {
		return RunResult{}, fmt.Errorf("%w: career sink is not configured", ErrDependencyUnavailable)
	}

	rules := s.rules
	if club := strings.TrimSpace(input.Club); club != "" {
		rules.Club = club
	}
	if err := rules.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	span.SetAttributes(attribute.String("club", rules.Club))

	players, err := s.directory.ListPlayers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list players")
		return RunResult{}, fmt.Errorf("%w: %w", ErrNoPlayers, err)
	}
	if len(players) == 0 {
		return RunResult{}, ErrNoPlayers
	}

	sequences, err := s.Collect(ctx, players, input.MaxWorkers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "collect careers")
		return RunResult{}, err
	}

	reconstructed, err := timeline.Reconstruct(rules, sequences)
	if err != nil {
		return RunResult{}, fmt.Errorf("reconstruct timeline: %w", err)
	}

	result := RunResult{
		Club:   rules.Club,
		Stints: reconstructed.Stints,
		Report: reconstructed.Report,
	}

	if !input.DryRun {
		if err := s.sink.WriteTimeline(ctx, rules.Club, reconstructed.Stints); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "write timeline")
			return RunResult{}, fmt.Errorf("write timeline club=%s: %w", rules.Club, err)
		}
		result.Written = true
	}

	result.Duration = time.Since(started)
	s.logSummary(ctx, result)
	return result, nil
}

// Collect fetches every player's career on a bounded worker pool. A failed
// fetch only affects that player, who gets a sentinel-only sequence. The
// returned slice follows the order of players.
func (s *CareerService) Collect(ctx context.Context, players []career.PlayerIdentity, maxWorkers int) ([]career.Sequence, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.Collect", attribute.Int("players", len(players)))
	defer span.End()

	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	pool, err := ants.NewPool(normalizeFetchWorkerCount(maxWorkers, len(players)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	sequences := make([]career.Sequence, len(players))
	var workers sync.WaitGroup
	for i, player := range players {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			sequences[i] = s.fetchOne(ctx, player)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, seq := range sequences {
		if seq.FetchErr != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("fetch_failures", failed))
	if failed == len(sequences) {
		return nil, fmt.Errorf("%w: %d players", ErrAllFetchesFailed, failed)
	}
	return sequences, nil
}

func (s *CareerService) fetchOne(ctx context.Context, player career.PlayerIdentity) career.Sequence {
	if err := player.Validate(); err != nil {
		return timeline.Collect(player, nil, err)
	}

	rows, err := s.feed.FetchCareer(ctx, player)
	if err != nil {
		s.logger.WarnContext(ctx, "career fetch failed",
			"player_id", player.ID,
			"player_name", player.Name,
			"error", err,
		)
		return timeline.Collect(player, nil, err)
	}
	return timeline.Collect(player, rows, nil)
}

func (s *CareerService) logSummary(ctx context.Context, result RunResult) {
	report := result.Report
	s.logger.InfoContext(ctx, "career timeline run finished",
		"club", result.Club,
		"players", report.Players,
		"fetch_failures", len(report.FetchFailures),
		"rows", len(result.Stints),
		"duplicates_dropped", report.DuplicatesDropped,
		"corrections_applied", report.CorrectionCount(timeline.CorrectionApplied),
		"corrections_skipped", report.CorrectionCount(timeline.CorrectionSkipped),
		"corrections_ambiguous", report.CorrectionCount(timeline.CorrectionAmbiguous),
		"unresolved_home_clubs", report.UnresolvedHomeClubs,
		"classifier_fallthroughs", len(report.Fallthroughs),
		"written", result.Written,
		"duration_ms", result.Duration.Milliseconds(),
	)
	for fee, count := range report.Fallthroughs {
		s.logger.DebugContext(ctx, "unclassified fee passed through", "fee", fee, "rows", count)
	}
}

func normalizeFetchWorkerCount(requested, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = defaultFetchWorkers
	}
	if workers > maxFetchWorkers {
		workers = maxFetchWorkers
	}
	if tasks > 0 && workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
