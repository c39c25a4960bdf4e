package timeline

import (
	"errors"
	"testing"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

func TestReconstruct_EndToEndSingleTransfer(t *testing.T) {
	seq := Collect(player("70", "Sample Player"), []career.RawStint{
		raw("Rivals FC", "Loan", career.Date(2019, 8, 1)),
		raw("Target", "£50,000", career.Date(2018, 7, 1)),
		raw("Home FC", "Signed", career.Date(2016, 1, 1)),
	}, nil)

	result, err := Reconstruct(rulesFor("Target"), []career.Sequence{seq})
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if len(result.Stints) != 1 {
		t.Fatalf("expected one output row, got=%d", len(result.Stints))
	}

	row := result.Stints[0]
	if row.Club != "Target" {
		t.Fatalf("unexpected club %q", row.Club)
	}
	if row.PrevClub != "Home FC" {
		t.Fatalf("expected prev_club=Home FC, got %q", row.PrevClub)
	}
	if row.NextClub != "Rivals FC" {
		t.Fatalf("expected next_club=Rivals FC, got %q", row.NextClub)
	}
	if row.TransferType != career.TransferTypeTransfer {
		t.Fatalf("expected Transfer, got %q", row.TransferType)
	}
	if row.Fee != "50000" {
		t.Fatalf("expected fee=50000, got %q", row.Fee)
	}
	if row.Season != "2018/19" {
		t.Fatalf("expected season=2018/19, got %q", row.Season)
	}
}

func TestReconstruct_Properties(t *testing.T) {
	rules := DefaultRules()
	sequences := []career.Sequence{
		Collect(player("73901", "Corrected Player"), []career.RawStint{
			raw("Tranmere", "Free", career.Date(2013, 7, 1)),
			raw("Crewe", "Free", career.Date(2011, 7, 1)),
		}, nil),
		Collect(player("80", "Loaned Twice"), []career.RawStint{
			raw("Tranmere", "Loan", career.Date(2016, 9, 1)),
			raw("ClubB", "Free", career.Date(2015, 6, 1)),
			raw("Tranmere", "Loan", career.Date(2011, 3, 1)),
			raw("ClubA", "Signed", career.Date(2010, 1, 1)),
		}, nil),
		Collect(player("81", "Academy Kid"), []career.RawStint{
			raw("Chester", "Free", career.Date(2003, 7, 1)),
			raw("Tranmere", "Trainee", nil),
		}, nil),
		Collect(player("82", "Offline Player"), nil, errors.New("timeout")),
	}

	result, err := Reconstruct(rules, sequences)
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}

	for _, row := range result.Stints {
		if row.Sentinel {
			t.Fatalf("sentinel leaked into output: %+v", row)
		}
		if row.TransferType == career.TransferTypeLoan && row.NextClub != "" {
			t.Fatalf("loan with next club: %+v", row)
		}
		if row.Fee == career.FeeTrainee && row.PrevClub != "Trainee" {
			t.Fatalf("trainee without Trainee origin: %+v", row)
		}
	}

	byPlayer := make(map[string][]career.Stint)
	for _, row := range result.Stints {
		byPlayer[row.PlayerID] = append(byPlayer[row.PlayerID], row)
	}

	if got := byPlayer["73901"]; len(got) != 1 || got[0].PrevClub != "Liverpool" {
		t.Fatalf("expected correction to win, got %+v", got)
	}
	loans := byPlayer["80"]
	if len(loans) != 2 || loans[0].PrevClub != "ClubA" || loans[1].PrevClub != "ClubB" {
		t.Fatalf("unexpected multi-loan home clubs: %+v", loans)
	}
	kid := byPlayer["81"]
	if len(kid) != 1 || kid[0].Season != "" || kid[0].TransferType != career.TransferTypeTrainee {
		t.Fatalf("unexpected trainee row: %+v", kid)
	}
	if len(byPlayer["82"]) != 0 {
		t.Fatalf("expected no rows for failed fetch")
	}

	if result.Report.Players != 4 || len(result.Report.FetchFailures) != 1 {
		t.Fatalf("unexpected report counts: %+v", result.Report)
	}
	if result.Report.CorrectionCount(CorrectionApplied) != 1 || result.Report.CorrectionCount(CorrectionSkipped) != 1 {
		t.Fatalf("unexpected correction outcomes: %+v", result.Report.Corrections)
	}
}

func TestReconstruct_RequiresClub(t *testing.T) {
	if _, err := Reconstruct(Rules{}, nil); !errors.Is(err, ErrClubRequired) {
		t.Fatalf("expected ErrClubRequired, got %v", err)
	}
}
