package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-careers/internal/domain/career"
	qb "github.com/riskibarqy/club-careers/internal/platform/querybuilder"
)

const (
	clubStintsTable = "club_stints"
	// ten columns per row keeps a full batch well under the 65535 bind limit.
	stintInsertBatchSize = 500
)

type StintRepository struct {
	db *sqlx.DB
}

var _ career.Sink = (*StintRepository)(nil)

func NewStintRepository(db *sqlx.DB) *StintRepository {
	return &StintRepository{db: db}
}

// WriteTimeline replaces the stored timeline for club in one transaction.
func (r *StintRepository) WriteTimeline(ctx context.Context, club string, stints []career.Stint) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace club stints: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom(clubStintsTable).
		Where(qb.Eq("club", club)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear club stints query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear club stints club=%s: %w", club, err)
	}

	for _, batch := range stintInsertBatches(club, stints, stintInsertBatchSize) {
		query, args, err := qb.InsertModels(clubStintsTable, batch, "")
		if err != nil {
			return fmt.Errorf("build insert club stints query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert club stints club=%s: %w", club, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace club stints tx: %w", err)
	}
	return nil
}

func stintInsertBatches(club string, stints []career.Stint, size int) [][]clubStintInsertModel {
	if size < 1 {
		size = stintInsertBatchSize
	}
	out := make([][]clubStintInsertModel, 0, (len(stints)+size-1)/size)
	for start := 0; start < len(stints); start += size {
		end := min(start+size, len(stints))
		batch := make([]clubStintInsertModel, 0, end-start)
		for _, item := range stints[start:end] {
			batch = append(batch, toClubStintInsertModel(club, item))
		}
		out = append(out, batch)
	}
	return out
}
