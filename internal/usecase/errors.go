package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrNoPlayers halts a run whose directory produced nobody to fetch.
	ErrNoPlayers = errors.New("player directory returned no players")
	// ErrAllFetchesFailed halts a run in which no career could be fetched.
	ErrAllFetchesFailed = errors.New("every player career fetch failed")
)
