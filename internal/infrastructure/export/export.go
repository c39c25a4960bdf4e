// Package export writes a reconstructed timeline to a file or stdout as CSV,
// JSON or a terminal table.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/riskibarqy/club-careers/internal/domain/career"
)

const dateLayout = "2006-01-02"

// Columns is the fixed output column order.
var Columns = []string{
	"player_id",
	"player_name",
	"club",
	"date_joined",
	"date_left",
	"fee",
	"prev_club",
	"next_club",
	"transfer_type",
	"season",
}

// Destination opens the writer a timeline is rendered into. An empty path or
// "-" means stdout.
type Destination struct {
	Path   string
	Stdout io.Writer
}

func (d Destination) open() (io.WriteCloser, error) {
	path := strings.TrimSpace(d.Path)
	if path == "" || path == "-" {
		out := d.Stdout
		if out == nil {
			out = os.Stdout
		}
		return nopCloser{out}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file %s: %w", path, err)
	}
	return f, nil
}

func (d Destination) write(render func(w io.Writer) error) (err error) {
	out, err := d.open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()
	return render(out)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// record returns the stint's values in Columns order. Missing values are
// empty strings.
func record(s career.Stint) []string {
	return []string{
		s.PlayerID,
		s.PlayerName,
		s.Club,
		formatDate(s.DateJoined),
		formatDate(s.DateLeft),
		s.Fee,
		s.PrevClub,
		s.NextClub,
		string(s.TransferType),
		s.Season,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
