package timeline

import (
	"time"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

func raw(club, fee string, joined *time.Time) career.RawStint {
	return career.RawStint{Club: club, Fee: fee, DateJoined: joined}
}

func player(id, name string) career.PlayerIdentity {
	return career.PlayerIdentity{ID: id, Name: name, ProfileURL: "https://example.test/players/player.sd?player_id=" + id}
}

func rulesFor(club string) Rules {
	return Rules{Club: club}
}

func clubRows(club string, seq career.Sequence) []career.Stint {
	var out []career.Stint
	for _, row := range seq.Rows {
		if !row.Sentinel && row.Club == club {
			out = append(out, row)
		}
	}
	return out
}
