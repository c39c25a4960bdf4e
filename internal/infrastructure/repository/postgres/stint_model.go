package postgres

import (
	"time"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

type clubStintInsertModel struct {
	Club         string     `db:"club"`
	PlayerID     string     `db:"player_id"`
	PlayerName   string     `db:"player_name"`
	DateJoined   *time.Time `db:"date_joined"`
	DateLeft     *time.Time `db:"date_left"`
	Fee          *string    `db:"fee"`
	PrevClub     *string    `db:"prev_club"`
	NextClub     *string    `db:"next_club"`
	TransferType *string    `db:"transfer_type"`
	Season       *string    `db:"season"`
}

func toClubStintInsertModel(club string, item career.Stint) clubStintInsertModel {
	return clubStintInsertModel{
		Club:         club,
		PlayerID:     item.PlayerID,
		PlayerName:   item.PlayerName,
		DateJoined:   item.DateJoined,
		DateLeft:     item.DateLeft,
		Fee:          nullableString(item.Fee),
		PrevClub:     nullableString(item.PrevClub),
		NextClub:     nullableString(item.NextClub),
		TransferType: nullableString(string(item.TransferType)),
		Season:       nullableString(item.Season),
	}
}

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
