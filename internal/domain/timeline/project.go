package timeline

import (
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

var feeReplacer = strings.NewReplacer("£", "", "€", "", "$", "", ",", "")

// NormalizeFee strips currency symbols and thousands separators.
func NormalizeFee(fee string) string {
	return strings.TrimSpace(feeReplacer.Replace(fee))
}

// Project keeps the club-of-interest stints, drops exact duplicates and orders
// them by player name then join date. Undated stints sort last within a player.
// The second return value is the number of duplicates dropped.
func Project(club string, sequences []career.Sequence) ([]career.Stint, int) {
	out := make([]career.Stint, 0)
	seen := make(map[stintKey]struct{})
	dropped := 0

	for _, seq := range sequences {
		for _, row := range seq.Rows {
			if row.Sentinel || row.Club != club {
				continue
			}
			row.Fee = NormalizeFee(row.Fee)
			key := keyOf(row)
			if _, dup := seen[key]; dup {
				dropped++
				continue
			}
			seen[key] = struct{}{}
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PlayerName != out[j].PlayerName {
			return out[i].PlayerName < out[j].PlayerName
		}
		return joinedBefore(out[i], out[j])
	})

	return out, dropped
}

// stintKey is the comparable form of a stint; two stints share a key exactly
// when career.Stint.Equal reports them equal.
type stintKey struct {
	playerID, playerName, club, fee string
	prevClub, nextClub, season      string
	transferType                    career.TransferType
	joined, left                    dateKey
	sentinel                        bool
}

type dateKey struct {
	set  bool
	unix int64
	nsec int
}

func keyOf(s career.Stint) stintKey {
	return stintKey{
		playerID:     s.PlayerID,
		playerName:   s.PlayerName,
		club:         s.Club,
		fee:          s.Fee,
		prevClub:     s.PrevClub,
		nextClub:     s.NextClub,
		season:       s.Season,
		transferType: s.TransferType,
		joined:       dateKeyOf(s.DateJoined),
		left:         dateKeyOf(s.DateLeft),
		sentinel:     s.Sentinel,
	}
}

func dateKeyOf(t *time.Time) dateKey {
	if t == nil {
		return dateKey{}
	}
	return dateKey{set: true, unix: t.Unix(), nsec: t.Nanosecond()}
}

func joinedBefore(a, b career.Stint) bool {
	switch {
	case a.DateJoined == nil:
		return false
	case b.DateJoined == nil:
		return true
	default:
		return a.DateJoined.Before(*b.DateJoined)
	}
}
