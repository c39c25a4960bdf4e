package timeline

import (
	"strings"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

var currencyMarkers = []string{"£", "€", "$"}

// Classify maps a player's name and raw fee text to a transfer type. Fees the
// table does not recognise pass through verbatim for manual review.
func Classify(roster map[string]struct{}, playerName, fee string) career.TransferType {
	if _, ok := roster[playerName]; ok {
		return career.TransferTypeTrainee
	}

	switch fee {
	case career.FeeTrainee:
		return career.TransferTypeTrainee
	case career.FeeFree, career.FeeSigned, career.FeeUndisc:
		return career.TransferTypeTransfer
	}
	if hasCurrencyMarker(fee) {
		return career.TransferTypeTransfer
	}

	switch fee {
	case career.FeeMonthly:
		return career.TransferTypeTransfer
	case career.FeeYouth:
		return career.TransferTypeLoan
	}

	return career.TransferType(fee)
}

func hasCurrencyMarker(fee string) bool {
	for _, marker := range currencyMarkers {
		if strings.Contains(fee, marker) {
			return true
		}
	}
	return false
}

func isKnownType(t career.TransferType) bool {
	switch t {
	case career.TransferTypeTrainee, career.TransferTypeTransfer, career.TransferTypeLoan:
		return true
	default:
		return false
	}
}

// ClassifyTransfers labels every real stint. Loans lose their next club since
// the player returns to the parent club, and trainee signings get "Trainee" as
// their origin. The returned map counts unrecognised fee values.
func ClassifyTransfers(rules Rules, sequences []career.Sequence) ([]career.Sequence, map[string]int) {
	out := cloneAll(sequences)
	roster := rules.roster()
	fallthroughs := make(map[string]int)

	for i := range out {
		rows := out[i].Rows
		for idx := range rows {
			row := &rows[idx]
			if row.Sentinel {
				continue
			}

			row.TransferType = Classify(roster, row.PlayerName, row.Fee)
			if !isKnownType(row.TransferType) {
				fallthroughs[row.Fee]++
			}
			if row.TransferType == career.TransferTypeLoan {
				row.NextClub = ""
			}
			if row.Fee == career.FeeTrainee {
				row.PrevClub = career.FeeTrainee
			}
		}
	}

	return out, fallthroughs
}
