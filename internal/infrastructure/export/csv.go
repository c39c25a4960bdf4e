package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

type CSVWriter struct {
	dest Destination
}

var _ career.Sink = (*CSVWriter)(nil)

func NewCSVWriter(dest Destination) *CSVWriter {
	return &CSVWriter{dest: dest}
}

func (w *CSVWriter) WriteTimeline(_ context.Context, _ string, stints []career.Stint) error {
	return w.dest.write(func(out io.Writer) error {
		cw := csv.NewWriter(out)
		if err := cw.Write(Columns); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		for _, s := range stints {
			if err := cw.Write(record(s)); err != nil {
				return fmt.Errorf("write csv row player_id=%s: %w", s.PlayerID, err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("flush csv: %w", err)
		}
		return nil
	})
}
