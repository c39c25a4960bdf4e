package timeline

import "github.com/riskibarqy/club-careers/internal/domain/career"

// neighbors is the pair of clubs either side of a stint within one lane.
type neighbors struct {
	prev string
	next string
}

// overlay maps a row index within a sequence to the neighbors one lane assigns
// it. Rows outside the lane are absent.
type overlay map[int]neighbors

// lane selects the rows of a sequence that take part in one positional pass.
type lane func(club string, row career.Stint) bool

func isLoanAtClub(club string, row career.Stint) bool {
	return !row.Sentinel && row.Club == club && row.Fee == career.FeeLoan
}

// loanLane holds the club's own loan spells interleaved with permanent moves
// elsewhere. Sentinels qualify since their club and fee are null.
func loanLane(club string, row career.Stint) bool {
	if isLoanAtClub(club, row) {
		return true
	}
	return (row.Sentinel || row.Club != club) && row.Fee != career.FeeLoan
}

// permanentLane holds every non-loan row.
func permanentLane(_ string, row career.Stint) bool {
	return row.Fee != career.FeeLoan
}

// feedLane holds every row in feed order. It is the base layer the two real
// lanes are written over.
func feedLane(string, career.Stint) bool {
	return true
}

// laneOverlay shifts clubs positionally inside the lane: rows are most recent
// first, so the previous lane member is the next club and vice versa.
func laneOverlay(club string, rows []career.Stint, in lane) overlay {
	members := make([]int, 0, len(rows))
	for i, row := range rows {
		if in(club, row) {
			members = append(members, i)
		}
	}

	out := make(overlay, len(members))
	for pos, idx := range members {
		var n neighbors
		if pos > 0 {
			n.next = rows[members[pos-1]].Club
		}
		if pos+1 < len(members) {
			n.prev = rows[members[pos+1]].Club
		}
		out[idx] = n
	}
	return out
}

// feedBase is the feed-order layer minus any neighbor that is the club of
// interest itself on one of its own stints. Those edges belong to the lanes,
// which resolve them to null when the other side is a career edge.
func feedBase(club string, rows []career.Stint) overlay {
	base := laneOverlay(club, rows, feedLane)
	for idx, n := range base {
		if rows[idx].Sentinel || rows[idx].Club != club {
			continue
		}
		if n.prev == club {
			n.prev = ""
		}
		if n.next == club {
			n.next = ""
		}
		base[idx] = n
	}
	return base
}

// applyOverlays writes overlays in order onto a copy of rows, starting from
// cleared neighbors. A later overlay wins for every field it resolves; a null
// at a lane boundary leaves the earlier value in place.
func applyOverlays(rows []career.Stint, overlays ...overlay) []career.Stint {
	out := make([]career.Stint, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].PrevClub = ""
		out[i].NextClub = ""
	}
	for _, layer := range overlays {
		for idx, n := range layer {
			if n.prev != "" {
				out[idx].PrevClub = n.prev
			}
			if n.next != "" {
				out[idx].NextClub = n.next
			}
		}
	}
	return out
}

// ResolveNeighbors assigns previous and next clubs per player. The feed order
// is the base layer, the loan lane is written over it and the permanent lane
// over that. A loan sitting between two permanent stints therefore never
// becomes their neighbor, while a stint at the edge of its lane keeps its
// plain feed neighbor unless that neighbor is the club itself. Neighbors derive only from raw club and fee, so
// re-running it is idempotent.
func ResolveNeighbors(club string, sequences []career.Sequence) []career.Sequence {
	out := cloneAll(sequences)
	for i := range out {
		rows := out[i].Rows
		out[i].Rows = applyOverlays(
			rows,
			feedBase(club, rows),
			laneOverlay(club, rows, loanLane),
			laneOverlay(club, rows, permanentLane),
		)
	}
	return out
}
