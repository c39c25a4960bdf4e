package commands

import (
	"testing"

	"github.com/riskibarqy/club-careers/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)

	_, err = parseSteps([]string{"two"})
	assert.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	version, err := parseVersion("7")
	require.NoError(t, err)
	assert.Equal(t, 7, version)

	_, err = parseVersion("-1")
	assert.Error(t, err)

	target, err := parseTarget("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), target)

	_, err = parseTarget("-12")
	assert.Error(t, err)
}

func TestApplyRunFlags(t *testing.T) {
	t.Cleanup(func() { runFlags = runOptions{} })

	runFlags.format = "JSON"
	runFlags.output = "out/timeline.json"
	runFlags.workers = 8
	runFlags.club = "Everton"

	cfg := config.Config{OutputFormat: config.OutputCSV, FetchMaxWorkers: 30, Club: "Tranmere"}
	require.NoError(t, applyRunFlags(&cfg))
	assert.Equal(t, config.OutputJSON, cfg.OutputFormat)
	assert.Equal(t, "out/timeline.json", cfg.OutputPath)
	assert.Equal(t, 8, cfg.FetchMaxWorkers)
	assert.Equal(t, "Everton", cfg.Club)

	runFlags.format = "xml"
	assert.Error(t, applyRunFlags(&cfg))
}

func TestApplyRunFlags_RejectsWorkersOutOfRange(t *testing.T) {
	t.Cleanup(func() { runFlags = runOptions{} })

	for _, workers := range []int{-1, config.MaxFetchWorkers + 1, 300} {
		runFlags = runOptions{workers: workers}
		cfg := config.Config{FetchMaxWorkers: 30}

		err := applyRunFlags(&cfg)
		require.Error(t, err, "workers=%d", workers)
		assert.Contains(t, err.Error(), "FETCH_MAX_WORKERS must be between 1 and 256")
		assert.Equal(t, 30, cfg.FetchMaxWorkers)
	}

	runFlags = runOptions{workers: config.MaxFetchWorkers}
	cfg := config.Config{FetchMaxWorkers: 30}
	require.NoError(t, applyRunFlags(&cfg))
	assert.Equal(t, config.MaxFetchWorkers, cfg.FetchMaxWorkers)
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"run", "seasons", "migrate"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
