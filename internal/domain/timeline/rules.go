package timeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

var (
	ErrClubRequired      = errors.New("club of interest is required")
	ErrInvalidCorrection = errors.New("invalid correction entry")
)

// DefaultClub is the club the embedded roster and corrections were curated for.
const DefaultClub = "Tranmere"

// Rules carries the club of interest and the manually maintained reconciliation
// tables. The trainee roster goes stale as new academy players come through and
// must be kept up to date by hand.
type Rules struct {
	Club          string
	TraineeRoster []string
	Corrections   []career.Correction

	// UnresolvedHomeClub is written to a multi-loan stint's previous club when
	// no earlier permanent stint exists. Empty means null.
	UnresolvedHomeClub string
}

func DefaultRules() Rules {
	return Rules{
		Club: DefaultClub,
		TraineeRoster: []string{
			"Bailey Passant",
			"Cole Stockton",
			"Mitch Duggan",
			"Ben Jago",
			"Ben Maher",
			"Danny Harrison",
			"Will Vaulks",
			"Mike Jones",
			"Richard Hinds",
			"Paul Aldridge",
		},
		Corrections: []career.Correction{
			{PlayerID: "73901", PrevClub: "Liverpool"},
			{PlayerID: "78589", PrevClub: "Cardiff City"},
		},
	}
}

func (r Rules) Validate() error {
	if strings.TrimSpace(r.Club) == "" {
		return ErrClubRequired
	}
	for _, c := range r.Corrections {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCorrection, err)
		}
	}
	return nil
}

func (r Rules) roster() map[string]struct{} {
	out := make(map[string]struct{}, len(r.TraineeRoster))
	for _, name := range r.TraineeRoster {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}
