package export

import (
	"context"
	"fmt"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-careers/internal/domain/career"
	"github.com/valyala/bytebufferpool"
)

type stintDocument struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Club         string  `json:"club"`
	DateJoined   *string `json:"date_joined"`
	DateLeft     *string `json:"date_left"`
	Fee          *string `json:"fee"`
	PrevClub     *string `json:"prev_club"`
	NextClub     *string `json:"next_club"`
	TransferType *string `json:"transfer_type"`
	Season       *string `json:"season"`
}

func toStintDocument(s career.Stint) stintDocument {
	return stintDocument{
		PlayerID:     s.PlayerID,
		PlayerName:   s.PlayerName,
		Club:         s.Club,
		DateJoined:   nullable(formatDate(s.DateJoined)),
		DateLeft:     nullable(formatDate(s.DateLeft)),
		Fee:          nullable(s.Fee),
		PrevClub:     nullable(s.PrevClub),
		NextClub:     nullable(s.NextClub),
		TransferType: nullable(string(s.TransferType)),
		Season:       nullable(s.Season),
	}
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// JSONWriter renders the timeline as one JSON array with explicit nulls.
type JSONWriter struct {
	dest Destination
}

var _ career.Sink = (*JSONWriter)(nil)

func NewJSONWriter(dest Destination) *JSONWriter {
	return &JSONWriter{dest: dest}
}

func (w *JSONWriter) WriteTimeline(_ context.Context, _ string, stints []career.Stint) error {
	docs := make([]stintDocument, 0, len(stints))
	for _, s := range stints {
		docs = append(docs, toStintDocument(s))
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(docs); err != nil {
		return fmt.Errorf("encode timeline json: %w", err)
	}
	return w.dest.write(func(out io.Writer) error {
		if _, err := buf.WriteTo(out); err != nil {
			return fmt.Errorf("write timeline json: %w", err)
		}
		return nil
	})
}
