package career

import "context"

// Directory lists every player who appeared for the club of interest.
type Directory interface {
	ListPlayers(ctx context.Context) ([]PlayerIdentity, error)
}

// Feed returns one player's career rows, most recent first.
type Feed interface {
	FetchCareer(ctx context.Context, player PlayerIdentity) ([]RawStint, error)
}

// Sink persists the reconstructed timeline for a club.
type Sink interface {
	WriteTimeline(ctx context.Context, club string, stints []Stint) error
}
