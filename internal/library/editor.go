package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"setlist/internal/songkey"
)

// RenameOutcome describes which branch an edit took.
type RenameOutcome int

const (
	// RenameUpdated means the grouping key was unchanged and the song was
	// edited in place.
	RenameUpdated RenameOutcome = iota
	// RenameMoved means the song moved to a previously unused grouping key.
	RenameMoved
	// RenameMerged means the song was folded into an existing song under the
	// new grouping key.
	RenameMerged
)

// Rename applies edited representative fields to the song at oldKey.
//
// Three cases, decided by the grouping key derived from the new name and
// singer: the key is unchanged (in-place update), the key is free (the song
// moves), or another song already owns the key. The last case merges the two
// groups, and is refused with ErrMergeConfirmationRequired unless allowMerge
// is set.
//
// Updates and moves rewrite the identity snapshot on every entry so the
// entries follow their song. A merge does not: the absorbed entries keep the
// snapshots they were recorded with.
func (s *Store) Rename(ctx context.Context, oldKey string, fields SongFields, allowMerge bool) (RenameOutcome, *Song, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return 0, nil, ErrNameRequired
	}
	newKey := songkey.Key(fields.Name, fields.Singer)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("begin rename tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	song, err := getSongTx(ctx, tx, oldKey)
	if err != nil {
		return 0, nil, err
	}
	if song == nil {
		return 0, nil, fmt.Errorf("song %q: %w", oldKey, ErrNotFound)
	}

	now := time.Now().UTC()
	outcome := RenameUpdated
	resultKey := newKey

	if newKey == oldKey {
		if err := updateSongFieldsTx(ctx, tx, song.ID, oldKey, fields, now); err != nil {
			return 0, nil, err
		}
		if err := relabelEntriesTx(ctx, tx, song.ID, fields); err != nil {
			return 0, nil, err
		}
	} else {
		target, err := getSongTx(ctx, tx, newKey)
		if err != nil {
			return 0, nil, err
		}
		switch {
		case target == nil:
			outcome = RenameMoved
			if err := updateSongFieldsTx(ctx, tx, song.ID, newKey, fields, now); err != nil {
				return 0, nil, err
			}
			if err := relabelEntriesTx(ctx, tx, song.ID, fields); err != nil {
				return 0, nil, err
			}
		case !allowMerge:
			return 0, nil, fmt.Errorf("%q: %w", fields.Name, ErrMergeConfirmationRequired)
		default:
			outcome = RenameMerged
			if err := mergeSongsTx(ctx, tx, song, target, now); err != nil {
				return 0, nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("commit rename: %w", err)
	}
	result, err := s.GetByKey(ctx, resultKey)
	if err != nil {
		return 0, nil, err
	}
	return outcome, result, nil
}

// DeleteEntry removes a single play. The owning song's play count drops by
// one and its distinct dates are recomputed; removing the last play removes
// the song itself, which the returned flag reports.
func (s *Store) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var songID string
	row := tx.QueryRowContext(ctx, `SELECT song_id FROM entries WHERE id = ?`, entryID)
	if err := row.Scan(&songID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("entry %q: %w", entryID, ErrNotFound)
		}
		return false, fmt.Errorf("lookup entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, entryID); err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}

	songRemoved, err := recountSongTx(ctx, tx, songID, time.Now().UTC())
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete: %w", err)
	}
	return songRemoved, nil
}

// DeleteSong removes a song and all of its plays.
func (s *Store) DeleteSong(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM songs WHERE group_key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("song %q: %w", key, ErrNotFound)
	}
	return nil
}

// Clear wipes the entire library, including sequence counters and custom
// song types.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"entries", "songs", "sequence_counters", "song_types"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}

func getSongTx(ctx context.Context, tx *sql.Tx, key string) (*Song, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE group_key = ?`, key)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

func updateSongFieldsTx(ctx context.Context, tx *sql.Tx, songID, key string, fields SongFields, now time.Time) error {
	_, err := tx.ExecContext(
		ctx,
		`UPDATE songs
         SET group_key = ?, name = ?, name_alt = ?, singer = ?, singer_alt = ?,
             song_type = ?, duration = ?, updated_at = ?
         WHERE id = ?`,
		key,
		fields.Name,
		nullableString(fields.NameAlt),
		fields.Singer,
		nullableString(fields.SingerAlt),
		nullableString(fields.SongType),
		nullableString(fields.Duration),
		timestamp(now),
		songID,
	)
	if err != nil {
		return fmt.Errorf("update song fields: %w", err)
	}
	return nil
}

func relabelEntriesTx(ctx context.Context, tx *sql.Tx, songID string, fields SongFields) error {
	_, err := tx.ExecContext(
		ctx,
		`UPDATE entries
         SET name = ?, name_alt = ?, singer = ?, singer_alt = ?, song_type = ?
         WHERE song_id = ?`,
		fields.Name,
		nullableString(fields.NameAlt),
		fields.Singer,
		nullableString(fields.SingerAlt),
		nullableString(fields.SongType),
		songID,
	)
	if err != nil {
		return fmt.Errorf("relabel entries: %w", err)
	}
	return nil
}

// mergeSongsTx folds source into target. Source entries move over after
// target's own, preserving their relative order and their snapshots. Dates
// are unioned with target's order first; play counts add up.
func mergeSongsTx(ctx context.Context, tx *sql.Tx, source, target *Song, now time.Time) error {
	var maxPosition int
	row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) FROM entries WHERE song_id = ?`, target.ID)
	if err := row.Scan(&maxPosition); err != nil {
		return fmt.Errorf("target entry positions: %w", err)
	}

	_, err := tx.ExecContext(
		ctx,
		`UPDATE entries
         SET song_id = ?, position = position + ?
         WHERE song_id = ?`,
		target.ID,
		maxPosition,
		source.ID,
	)
	if err != nil {
		return fmt.Errorf("move entries: %w", err)
	}

	dates := target.Dates
	for _, d := range source.Dates {
		if !target.HasDate(d) {
			dates = append(dates, d)
		}
	}
	datesJSON, err := encodeDates(dates)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE songs SET play_count = ?, dates_json = ?, updated_at = ? WHERE id = ?`,
		target.PlayCount+source.PlayCount,
		datesJSON,
		timestamp(now),
		target.ID,
	)
	if err != nil {
		return fmt.Errorf("update merge target: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, source.ID); err != nil {
		return fmt.Errorf("remove merge source: %w", err)
	}
	return nil
}

// recountSongTx resyncs a song's play count and dates with its remaining
// entries, removing the song once none are left.
func recountSongTx(ctx context.Context, tx *sql.Tx, songID string, now time.Time) (bool, error) {
	rows, err := tx.QueryContext(
		ctx,
		`SELECT date FROM entries WHERE song_id = ? ORDER BY position`,
		songID,
	)
	if err != nil {
		return false, fmt.Errorf("recount entries: %w", err)
	}
	defer rows.Close()

	count := 0
	var dates []string
	seen := map[string]bool{}
	for rows.Next() {
		var date sql.NullString
		if err := rows.Scan(&date); err != nil {
			return false, err
		}
		count++
		if date.String != "" && !seen[date.String] {
			seen[date.String] = true
			dates = append(dates, date.String)
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}

	if count == 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, songID); err != nil {
			return false, fmt.Errorf("remove emptied song: %w", err)
		}
		return true, nil
	}

	datesJSON, err := encodeDates(dates)
	if err != nil {
		return false, err
	}
	_, err = tx.ExecContext(
		ctx,
		`UPDATE songs SET play_count = ?, dates_json = ?, updated_at = ? WHERE id = ?`,
		count,
		datesJSON,
		timestamp(now),
		songID,
	)
	if err != nil {
		return false, fmt.Errorf("resync song: %w", err)
	}
	return false, nil
}
