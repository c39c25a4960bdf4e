package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

// StintRepository keeps the last written timeline per club in memory.
type StintRepository struct {
	mu     sync.RWMutex
	byClub map[string][]career.Stint
}

var _ career.Sink = (*StintRepository)(nil)

func NewStintRepository() *StintRepository {
	return &StintRepository{byClub: make(map[string][]career.Stint)}
}

func (r *StintRepository) WriteTimeline(_ context.Context, club string, stints []career.Stint) error {
	club = strings.TrimSpace(club)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byClub[club] = append([]career.Stint(nil), stints...)
	return nil
}

func (r *StintRepository) ListByClub(_ context.Context, club string) ([]career.Stint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stints, ok := r.byClub[strings.TrimSpace(club)]
	if !ok {
		return nil, false
	}
	return append([]career.Stint(nil), stints...), true
}
