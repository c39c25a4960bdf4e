package timeline

import (
	"errors"
	"testing"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

func TestCollect_BracketsRowsWithSentinels(t *testing.T) {
	seq := Collect(player("1", "Alan Rogers"), []career.RawStint{
		raw("Rivals FC", "Loan", nil),
		raw("Tranmere", "Free", nil),
	}, nil)

	if len(seq.Rows) != 4 {
		t.Fatalf("expected 4 rows, got=%d", len(seq.Rows))
	}
	if !seq.Rows[0].Sentinel || !seq.Rows[3].Sentinel {
		t.Fatalf("expected first and last rows to be sentinels")
	}
	if seq.Rows[1].Club != "Rivals FC" || seq.Rows[2].Club != "Tranmere" {
		t.Fatalf("expected feed order preserved, got %q then %q", seq.Rows[1].Club, seq.Rows[2].Club)
	}
	for _, row := range seq.Rows {
		if row.PlayerID != "1" || row.PlayerName != "Alan Rogers" {
			t.Fatalf("expected identity on every row, got %+v", row)
		}
	}
	if seq.Rows[0].Club != "" || seq.Rows[0].Fee != "" || seq.Rows[0].DateJoined != nil {
		t.Fatalf("expected sentinel fields to be null, got %+v", seq.Rows[0])
	}
}

func TestCollect_FetchFailureKeepsOnlySentinels(t *testing.T) {
	fetchErr := errors.New("boom")
	seq := Collect(player("2", "Ian Muir"), []career.RawStint{
		raw("Tranmere", "Free", nil),
	}, fetchErr)

	if len(seq.Rows) != 2 {
		t.Fatalf("expected only sentinels, got=%d rows", len(seq.Rows))
	}
	if !errors.Is(seq.FetchErr, fetchErr) {
		t.Fatalf("expected fetch error recorded, got %v", seq.FetchErr)
	}
}

func TestCollect_SentinelCountIsAlwaysTwo(t *testing.T) {
	cases := [][]career.RawStint{
		nil,
		{raw("Tranmere", "Free", nil)},
		{raw("A", "Free", nil), raw("B", "Loan", nil), raw("C", "Signed", nil)},
	}
	for _, rows := range cases {
		seq := Collect(player("3", "John Aldridge"), rows, nil)
		sentinels := 0
		for _, row := range seq.Rows {
			if row.Sentinel {
				sentinels++
			}
		}
		if sentinels != 2 {
			t.Fatalf("expected 2 sentinels for %d rows, got=%d", len(rows), sentinels)
		}
	}
}
