package career

import (
	"fmt"
	"strings"
	"time"
)

// TransferType classifies how a player arrived for a stint. Values outside the
// known constants carry the raw fee text through unchanged.
type TransferType string

const (
	TransferTypeTrainee  TransferType = "Trainee"
	TransferTypeTransfer TransferType = "Transfer"
	TransferTypeLoan     TransferType = "Loan"
)

// Raw fee labels used by the source feed.
const (
	FeeLoan    = "Loan"
	FeeTrainee = "Trainee"
	FeeFree    = "Free"
	FeeSigned  = "Signed"
	FeeUndisc  = "Undisc."
	FeeMonthly = "Monthly"
	FeeYouth   = "Youth"
)

// PlayerIdentity is one Player Directory entry.
type PlayerIdentity struct {
	ID         string
	Name       string
	ProfileURL string
}

func (p PlayerIdentity) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// RawStint is one career row as delivered by the feed. Empty strings and nil
// dates stand for missing values.
type RawStint struct {
	Club       string
	DateJoined *time.Time
	DateLeft   *time.Time
	Fee        string
}

// Stint is the working and output record for one spell at one club.
type Stint struct {
	PlayerID     string
	PlayerName   string
	Club         string
	DateJoined   *time.Time
	DateLeft     *time.Time
	Fee          string
	PrevClub     string
	NextClub     string
	TransferType TransferType
	Season       string

	// Sentinel marks the synthetic rows bracketing a player's history.
	Sentinel bool
}

// Equal reports whether two stints carry identical values in every field.
func (s Stint) Equal(other Stint) bool {
	return s.PlayerID == other.PlayerID &&
		s.PlayerName == other.PlayerName &&
		s.Club == other.Club &&
		sameDate(s.DateJoined, other.DateJoined) &&
		sameDate(s.DateLeft, other.DateLeft) &&
		s.Fee == other.Fee &&
		s.PrevClub == other.PrevClub &&
		s.NextClub == other.NextClub &&
		s.TransferType == other.TransferType &&
		s.Season == other.Season &&
		s.Sentinel == other.Sentinel
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Sequence is one player's working rows: a leading sentinel, the raw rows in
// feed order (most recent first), and a trailing sentinel.
type Sequence struct {
	Player   PlayerIdentity
	Rows     []Stint
	FetchErr error
}

// Clone returns a deep copy of the sequence rows so phases never share
// backing arrays.
func (s Sequence) Clone() Sequence {
	rows := make([]Stint, len(s.Rows))
	copy(rows, s.Rows)
	return Sequence{Player: s.Player, Rows: rows, FetchErr: s.FetchErr}
}

// Correction is a curated override of the previous club for one stint.
// DateJoined optionally pins the stint when a player has several spells.
type Correction struct {
	PlayerID   string
	PrevClub   string
	DateJoined *time.Time
}

func (c Correction) Validate() error {
	if strings.TrimSpace(c.PlayerID) == "" {
		return fmt.Errorf("correction player id is required")
	}
	if strings.TrimSpace(c.PrevClub) == "" {
		return fmt.Errorf("correction prev club is required for player %s", c.PlayerID)
	}
	return nil
}

// Date returns a UTC midnight date pointer. Handy for fixtures and config.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
