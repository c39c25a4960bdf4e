package timeline

import (
	"testing"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

func TestResolveNeighbors_LoanInSitsBetweenPermanentClubs(t *testing.T) {
	// Loaned in from Everton, went back, then sold to Wigan.
	seq := Collect(player("10", "Jason Koumas"), []career.RawStint{
		raw("Wigan", "£5,300,000", career.Date(2007, 7, 1)),
		raw("Tranmere", "Loan", career.Date(2005, 1, 10)),
		raw("Everton", "Signed", career.Date(2003, 7, 1)),
	}, nil)

	got := ResolveNeighbors("Tranmere", []career.Sequence{seq})[0]

	wigan, loan, everton := got.Rows[1], got.Rows[2], got.Rows[3]
	if loan.PrevClub != "Everton" || loan.NextClub != "Wigan" {
		t.Fatalf("unexpected loan neighbors prev=%q next=%q", loan.PrevClub, loan.NextClub)
	}
	if everton.NextClub != "Wigan" {
		t.Fatalf("expected loan skipped as Everton's neighbor, got next=%q", everton.NextClub)
	}
	if wigan.PrevClub != "Everton" {
		t.Fatalf("expected loan skipped as Wigan's neighbor, got prev=%q", wigan.PrevClub)
	}
}

func TestResolveNeighbors_CareerEdgesResolveToNull(t *testing.T) {
	seq := Collect(player("11", "Eric Nixon"), []career.RawStint{
		raw("Tranmere", "Free", career.Date(1988, 3, 1)),
	}, nil)

	got := ResolveNeighbors("Tranmere", []career.Sequence{seq})[0]
	row := got.Rows[1]
	if row.PrevClub != "" || row.NextClub != "" {
		t.Fatalf("expected null neighbors, got prev=%q next=%q", row.PrevClub, row.NextClub)
	}
}

func TestResolveNeighbors_LoanMadePermanentKeepsNullEdges(t *testing.T) {
	// Joined on loan, signed permanently the next season, nothing before.
	seq := Collect(player("14", "Ryan Shotton"), []career.RawStint{
		raw("Tranmere", "Free", career.Date(2012, 7, 1)),
		raw("Tranmere", "Loan", career.Date(2011, 1, 1)),
	}, nil)

	got := ResolveNeighbors("Tranmere", []career.Sequence{seq})[0]

	permanent, loan := got.Rows[1], got.Rows[2]
	if permanent.PrevClub != "" || permanent.NextClub != "" {
		t.Fatalf("expected null neighbors on permanent stint, got prev=%q next=%q", permanent.PrevClub, permanent.NextClub)
	}
	if loan.PrevClub != "" || loan.NextClub != "" {
		t.Fatalf("expected null neighbors on loan stint, got prev=%q next=%q", loan.PrevClub, loan.NextClub)
	}

	result, err := Reconstruct(rulesFor("Tranmere"), []career.Sequence{seq})
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	for _, row := range result.Stints {
		if row.PrevClub == "Tranmere" || row.NextClub == "Tranmere" {
			t.Fatalf("club of interest is its own neighbor: %+v", row)
		}
	}
}

func TestResolveNeighbors_DoesNotMutateInput(t *testing.T) {
	seq := Collect(player("12", "Pat Nevin"), []career.RawStint{
		raw("Kilmarnock", "Free", career.Date(1997, 7, 1)),
		raw("Tranmere", "£300,000", career.Date(1992, 8, 1)),
		raw("Everton", "£925,000", career.Date(1988, 7, 1)),
	}, nil)

	_ = ResolveNeighbors("Tranmere", []career.Sequence{seq})

	for _, row := range seq.Rows {
		if row.PrevClub != "" || row.NextClub != "" {
			t.Fatalf("expected input untouched, got %+v", row)
		}
	}
}

func TestResolveNeighbors_Idempotent(t *testing.T) {
	seq := Collect(player("13", "Steve Yates"), []career.RawStint{
		raw("Sheffield United", "Free", career.Date(2002, 7, 1)),
		raw("Tranmere", "Loan", career.Date(2001, 1, 1)),
		raw("Tranmere", "Loan", career.Date(2000, 1, 1)),
		raw("QPR", "£650,000", career.Date(1993, 8, 1)),
		raw("Bristol Rovers", "Trainee", career.Date(1986, 7, 1)),
	}, nil)

	once := ResolveNeighbors("Tranmere", []career.Sequence{seq})
	twice := ResolveNeighbors("Tranmere", once)

	for i := range once[0].Rows {
		a, b := once[0].Rows[i], twice[0].Rows[i]
		if a.PrevClub != b.PrevClub || a.NextClub != b.NextClub {
			t.Fatalf("row %d changed on rerun: %q/%q vs %q/%q", i, a.PrevClub, a.NextClub, b.PrevClub, b.NextClub)
		}
	}
}

func TestResolveNeighbors_PlayersNeverLeakIntoEachOther(t *testing.T) {
	first := Collect(player("20", "Ian Moore"), []career.RawStint{
		raw("Tranmere", "Trainee", career.Date(1994, 7, 1)),
	}, nil)
	second := Collect(player("21", "Ged Brannan"), []career.RawStint{
		raw("Tranmere", "Trainee", career.Date(1990, 7, 1)),
	}, nil)

	got := ResolveNeighbors("Tranmere", []career.Sequence{first, second})
	if got[0].Rows[1].PrevClub != "" || got[1].Rows[1].NextClub != "" {
		t.Fatalf("expected no cross-player neighbors, got %+v / %+v", got[0].Rows[1], got[1].Rows[1])
	}
}
