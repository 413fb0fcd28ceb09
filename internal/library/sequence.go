package library

import (
	"context"
	"database/sql"
	"fmt"
)

// NextSequence allocates the next play ordinal for a date. Values for a given
// date are strictly increasing from 1 and are never reused, even after entries
// are deleted. Entries that arrive with an explicit positive sequence bypass
// this counter entirely and do not advance it.
func (s *Store) NextSequence(ctx context.Context, date string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sequence tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	value, err := nextSequenceTx(ctx, tx, date)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence: %w", err)
	}
	return value, nil
}

func nextSequenceTx(ctx context.Context, tx *sql.Tx, date string) (int, error) {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO sequence_counters (date, last_value) VALUES (?, 1)
         ON CONFLICT(date) DO UPDATE SET last_value = last_value + 1`,
		date,
	)
	if err != nil {
		return 0, fmt.Errorf("advance sequence counter: %w", err)
	}

	var value int
	row := tx.QueryRowContext(ctx, `SELECT last_value FROM sequence_counters WHERE date = ?`, date)
	if err := row.Scan(&value); err != nil {
		return 0, fmt.Errorf("read sequence counter: %w", err)
	}
	return value, nil
}
