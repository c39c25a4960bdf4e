package timeline

import "github.com/riskibarqy/club-careers/internal/domain/career"

// Collect brackets one player's feed rows with a leading and trailing sentinel.
// A failed fetch keeps only the sentinels so the player contributes no history.
func Collect(player career.PlayerIdentity, rows []career.RawStint, fetchErr error) career.Sequence {
	seq := career.Sequence{
		Player:   player,
		FetchErr: fetchErr,
	}
	if fetchErr != nil {
		rows = nil
	}

	seq.Rows = make([]career.Stint, 0, len(rows)+2)
	seq.Rows = append(seq.Rows, sentinel(player))
	for _, raw := range rows {
		seq.Rows = append(seq.Rows, career.Stint{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Club:       raw.Club,
			DateJoined: raw.DateJoined,
			DateLeft:   raw.DateLeft,
			Fee:        raw.Fee,
		})
	}
	seq.Rows = append(seq.Rows, sentinel(player))

	return seq
}

func sentinel(player career.PlayerIdentity) career.Stint {
	return career.Stint{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Sentinel:   true,
	}
}

func cloneAll(sequences []career.Sequence) []career.Sequence {
	out := make([]career.Sequence, len(sequences))
	for i, seq := range sequences {
		out[i] = seq.Clone()
	}
	return out
}
