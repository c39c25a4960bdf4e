package timeline

import "github.com/riskibarqy/club-careers/internal/domain/career"

// ResolveHomeClubs overrides the previous club of every loan-in spell for
// players loaned to the club more than once. The lane overlay can pair two such
// loans with each other; the true origin is the latest permanent stint joined
// strictly before the loan began. Next clubs are left untouched.
//
// The second return value counts loans with no qualifying permanent stint,
// which receive fallback instead.
func ResolveHomeClubs(club, fallback string, sequences []career.Sequence) ([]career.Sequence, int) {
	out := cloneAll(sequences)
	unresolved := 0

	for i := range out {
		rows := out[i].Rows
		if countLoansAtClub(club, rows) < 2 {
			continue
		}

		for idx := range rows {
			if !isLoanAtClub(club, rows[idx]) {
				continue
			}
			home, ok := homeClubBefore(rows, rows[idx])
			if !ok {
				unresolved++
				rows[idx].PrevClub = fallback
				continue
			}
			rows[idx].PrevClub = home
		}
	}

	return out, unresolved
}

func countLoansAtClub(club string, rows []career.Stint) int {
	n := 0
	for _, row := range rows {
		if isLoanAtClub(club, row) {
			n++
		}
	}
	return n
}

// homeClubBefore finds the permanent stint with the latest join date strictly
// before the loan's join date. Ties go to the row listed first (most recent).
func homeClubBefore(rows []career.Stint, loan career.Stint) (string, bool) {
	if loan.DateJoined == nil {
		return "", false
	}

	var best *career.Stint
	for i := range rows {
		row := rows[i]
		if row.Sentinel || row.Fee == career.FeeLoan || row.DateJoined == nil {
			continue
		}
		if !row.DateJoined.Before(*loan.DateJoined) {
			continue
		}
		if best == nil || row.DateJoined.After(*best.DateJoined) {
			best = &rows[i]
		}
	}
	if best == nil {
		return "", false
	}
	return best.Club, true
}
