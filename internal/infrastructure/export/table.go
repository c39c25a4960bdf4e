package export

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/riskibarqy/club-careers/internal/domain/career"
)

type TableWriter struct {
	dest Destination
}

var _ career.Sink = (*TableWriter)(nil)

func NewTableWriter(dest Destination) *TableWriter {
	return &TableWriter{dest: dest}
}

func (w *TableWriter) WriteTimeline(_ context.Context, club string, stints []career.Stint) error {
	return w.dest.write(func(out io.Writer) error {
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetTitle(club)

		header := make(table.Row, 0, len(Columns))
		for _, col := range Columns {
			header = append(header, col)
		}
		t.AppendHeader(header)

		for _, s := range stints {
			values := record(s)
			row := make(table.Row, 0, len(values))
			for _, v := range values {
				row = append(row, v)
			}
			t.AppendRow(row)
		}
		t.AppendFooter(table.Row{"rows", len(stints)})

		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	})
}

// WriteSeasons prints discovered season ids, one per row.
func WriteSeasons(out io.Writer, seasons []string) error {
	if out == nil {
		return fmt.Errorf("output writer is required")
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Season ID"})
	for i, id := range seasons {
		t.AppendRow(table.Row{i + 1, id})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
