package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"setlist/internal/songkey"
)

// Merge folds one raw entry into the library: it either creates a new song
// under the entry's grouping key or attaches a new play to the existing one.
// The whole operation runs in a single transaction. The returned song
// reflects the post-merge state.
func (s *Store) Merge(ctx context.Context, raw RawEntry) (*Song, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return nil, ErrNameRequired
	}
	key := songkey.Key(raw.Name, raw.Singer)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin merge tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	row := tx.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE group_key = ?`, key)
	song, err := scanSong(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		song, err = createSongTx(ctx, tx, key, raw, now)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("lookup song: %w", err)
	default:
		if err := mergeIntoSongTx(ctx, tx, song, raw, now); err != nil {
			return nil, err
		}
	}

	sequence := raw.Sequence
	if sequence <= 0 {
		sequence, err = nextSequenceTx(ctx, tx, raw.Date)
		if err != nil {
			return nil, err
		}
	}
	if err := insertEntryTx(ctx, tx, song.ID, raw, sequence, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit merge: %w", err)
	}
	return s.GetByKey(ctx, key)
}

// MergeAll merges raw entries in input order and returns how many were added.
func (s *Store) MergeAll(ctx context.Context, raws []RawEntry) (int, error) {
	added := 0
	for _, raw := range raws {
		if _, err := s.Merge(ctx, raw); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func createSongTx(ctx context.Context, tx *sql.Tx, key string, raw RawEntry, now time.Time) (*Song, error) {
	song := &Song{
		ID:        uuid.NewString(),
		Key:       key,
		Name:      raw.Name,
		NameAlt:   raw.NameAlt,
		Singer:    raw.Singer,
		SingerAlt: raw.SingerAlt,
		SongType:  raw.SongType,
		Duration:  raw.Duration,
		FirstDate: raw.Date,
		PlayCount: 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if raw.Date != "" {
		song.Dates = []string{raw.Date}
	}

	datesJSON, err := encodeDates(song.Dates)
	if err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO songs (
            id, group_key, name, name_alt, singer, singer_alt, song_type,
            duration, first_date, dates_json, play_count, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		song.ID,
		song.Key,
		song.Name,
		nullableString(song.NameAlt),
		song.Singer,
		nullableString(song.SingerAlt),
		nullableString(song.SongType),
		nullableString(song.Duration),
		nullableString(song.FirstDate),
		datesJSON,
		song.PlayCount,
		timestamp(now),
		timestamp(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert song: %w", err)
	}
	return song, nil
}

// mergeIntoSongTx bumps the play count, records a newly seen date, and
// backfills representative fields the song is still missing. Fields that are
// already set stay untouched: first write wins.
func mergeIntoSongTx(ctx context.Context, tx *sql.Tx, song *Song, raw RawEntry, now time.Time) error {
	song.PlayCount++
	if raw.Date != "" && !song.HasDate(raw.Date) {
		song.Dates = append(song.Dates, raw.Date)
	}
	if song.Duration == "" && raw.Duration != "" {
		song.Duration = raw.Duration
	}
	if song.NameAlt == "" && raw.NameAlt != "" {
		song.NameAlt = raw.NameAlt
	}
	if song.SingerAlt == "" && raw.SingerAlt != "" {
		song.SingerAlt = raw.SingerAlt
	}
	if song.SongType == "" && raw.SongType != "" {
		song.SongType = raw.SongType
	}
	song.UpdatedAt = now

	datesJSON, err := encodeDates(song.Dates)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(
		ctx,
		`UPDATE songs
         SET play_count = ?, dates_json = ?, name_alt = ?, singer_alt = ?,
             song_type = ?, duration = ?, updated_at = ?
         WHERE id = ?`,
		song.PlayCount,
		datesJSON,
		nullableString(song.NameAlt),
		nullableString(song.SingerAlt),
		nullableString(song.SongType),
		nullableString(song.Duration),
		timestamp(now),
		song.ID,
	)
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	return nil
}

func insertEntryTx(ctx context.Context, tx *sql.Tx, songID string, raw RawEntry, sequence int, now time.Time) error {
	var position int
	row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM entries WHERE song_id = ?`, songID)
	if err := row.Scan(&position); err != nil {
		return fmt.Errorf("next entry position: %w", err)
	}

	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO entries (
            id, song_id, position, name, name_alt, singer, singer_alt,
            song_type, duration, start_time, end_time, date, sequence, added_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		songID,
		position,
		raw.Name,
		nullableString(raw.NameAlt),
		raw.Singer,
		nullableString(raw.SingerAlt),
		nullableString(raw.SongType),
		nullableString(raw.Duration),
		nullableString(raw.StartTime),
		nullableString(raw.EndTime),
		nullableString(raw.Date),
		sequence,
		timestamp(now),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}
