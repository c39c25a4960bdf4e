package timeline

import (
	"fmt"
	"time"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

// SeasonOf returns the June–May season label for a date, e.g. "2007/08".
// A nil date has no season.
func SeasonOf(date *time.Time) string {
	if date == nil {
		return ""
	}

	start := date.Year()
	if date.Month() <= time.May {
		start--
	}
	return fmt.Sprintf("%d/%02d", start, (start+1)%100)
}

func MapSeasons(sequences []career.Sequence) []career.Sequence {
	out := cloneAll(sequences)
	for i := range out {
		rows := out[i].Rows
		for idx := range rows {
			if rows[idx].Sentinel {
				continue
			}
			rows[idx].Season = SeasonOf(rows[idx].DateJoined)
		}
	}
	return out
}
