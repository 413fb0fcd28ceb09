package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReplaceAll swaps the library contents for the given songs, as a whole-file
// import does. Songs are inserted in slice order with their entries; sequence
// counters are rebuilt so future automatic sequences continue past the
// highest imported value per date.
func (s *Store) ReplaceAll(ctx context.Context, songs []*Song) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"entries", "songs", "sequence_counters"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	now := time.Now().UTC()
	maxSequences := map[string]int{}

	for _, song := range songs {
		if strings.TrimSpace(song.Name) == "" {
			return fmt.Errorf("imported song %q: %w", song.Key, ErrNameRequired)
		}
		if song.ID == "" {
			song.ID = uuid.NewString()
		}
		createdAt := song.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		updatedAt := song.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = now
		}

		datesJSON, err := encodeDates(song.Dates)
		if err != nil {
			return err
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
			timestamp(createdAt),
			timestamp(updatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert imported song %q: %w", song.Key, err)
		}

		for i, entry := range song.Entries {
			entryID := entry.ID
			if entryID == "" {
				entryID = uuid.NewString()
			}
			addedAt := entry.AddedAt
			if addedAt.IsZero() {
				addedAt = now
			}
			_, err := tx.ExecContext(
				ctx,
				`INSERT INTO entries (
                    id, song_id, position, name, name_alt, singer, singer_alt,
                    song_type, duration, start_time, end_time, date, sequence, added_at
                ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				entryID,
				song.ID,
				i+1,
				entry.Name,
				nullableString(entry.NameAlt),
				entry.Singer,
				nullableString(entry.SingerAlt),
				nullableString(entry.SongType),
				nullableString(entry.Duration),
				nullableString(entry.StartTime),
				nullableString(entry.EndTime),
				nullableString(entry.Date),
				entry.Sequence,
				timestamp(addedAt),
			)
			if err != nil {
				return fmt.Errorf("insert imported entry for %q: %w", song.Key, err)
			}
			if entry.Sequence > maxSequences[entry.Date] {
				maxSequences[entry.Date] = entry.Sequence
			}
		}
	}

	for date, last := range maxSequences {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO sequence_counters (date, last_value) VALUES (?, ?)`,
			date, last,
		); err != nil {
			return fmt.Errorf("rebuild sequence counter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
