// Package timeline reconstructs a club's player timeline from raw per-player
// career rows. Every phase takes a snapshot of the working sequences and
// returns a new one, so phases run as strict barriers in a fixed order.
package timeline

import "github.com/riskibarqy/club-careers/internal/domain/career"

type FetchFailure struct {
	PlayerID   string
	PlayerName string
	Err        error
}

// Report summarises the anomalies met during one reconstruction.
type Report struct {
	Players             int
	FetchFailures       []FetchFailure
	UnresolvedHomeClubs int
	Fallthroughs        map[string]int
	Corrections         []CorrectionResult
	DuplicatesDropped   int
}

func (r Report) CorrectionCount(outcome CorrectionOutcome) int {
	n := 0
	for _, c := range r.Corrections {
		if c.Outcome == outcome {
			n++
		}
	}
	return n
}

type Result struct {
	Stints []career.Stint
	Report Report
}

// Reconstruct runs neighbor resolution, multi-loan disambiguation,
// classification, season mapping, corrections and projection in that order.
func Reconstruct(rules Rules, sequences []career.Sequence) (Result, error) {
	if err := rules.Validate(); err != nil {
		return Result{}, err
	}

	report := Report{Players: len(sequences)}
	for _, seq := range sequences {
		if seq.FetchErr != nil {
			report.FetchFailures = append(report.FetchFailures, FetchFailure{
				PlayerID:   seq.Player.ID,
				PlayerName: seq.Player.Name,
				Err:        seq.FetchErr,
			})
		}
	}

	working := ResolveNeighbors(rules.Club, sequences)
	working, report.UnresolvedHomeClubs = ResolveHomeClubs(rules.Club, rules.UnresolvedHomeClub, working)
	working, report.Fallthroughs = ClassifyTransfers(rules, working)
	working = MapSeasons(working)
	working, report.Corrections = ApplyCorrections(rules.Club, rules.Corrections, working)

	stints, dropped := Project(rules.Club, working)
	report.DuplicatesDropped = dropped

	return Result{Stints: stints, Report: report}, nil
}
