package timeline

import "github.com/riskibarqy/club-careers/internal/domain/career"

// CorrectionOutcome records how one manual correction was applied.
type CorrectionOutcome string

const (
	CorrectionApplied   CorrectionOutcome = "applied"
	CorrectionSkipped   CorrectionOutcome = "skipped"
	CorrectionAmbiguous CorrectionOutcome = "ambiguous"
)

type CorrectionResult struct {
	Correction career.Correction
	Outcome    CorrectionOutcome
	Matches    int
}

type rowRef struct {
	seq int
	row int
}

// ApplyCorrections overwrites the previous club of the club-of-interest stint
// each correction points at, joining on player id and, when given, join date.
// No match leaves the data untouched. Several matches overwrite the first one
// in feed order, the most recent spell.
func ApplyCorrections(club string, corrections []career.Correction, sequences []career.Sequence) ([]career.Sequence, []CorrectionResult) {
	out := cloneAll(sequences)
	results := make([]CorrectionResult, 0, len(corrections))

	for _, c := range corrections {
		matches := findCorrectionTargets(club, c, out)
		result := CorrectionResult{Correction: c, Matches: len(matches)}

		switch {
		case len(matches) == 0:
			result.Outcome = CorrectionSkipped
		case len(matches) == 1:
			result.Outcome = CorrectionApplied
		default:
			result.Outcome = CorrectionAmbiguous
		}
		if len(matches) > 0 {
			ref := matches[0]
			out[ref.seq].Rows[ref.row].PrevClub = c.PrevClub
		}

		results = append(results, result)
	}

	return out, results
}

func findCorrectionTargets(club string, c career.Correction, sequences []career.Sequence) []rowRef {
	var refs []rowRef
	for si, seq := range sequences {
		for ri, row := range seq.Rows {
			if row.Sentinel || row.Club != club || row.PlayerID != c.PlayerID {
				continue
			}
			if c.DateJoined != nil && (row.DateJoined == nil || !row.DateJoined.Equal(*c.DateJoined)) {
				continue
			}
			refs = append(refs, rowRef{seq: si, row: ri})
		}
	}
	return refs
}
