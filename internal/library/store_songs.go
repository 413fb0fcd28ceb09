package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"setlist/internal/songkey"
)

// GetByKey fetches a song by grouping key. Returns nil when no song exists.
func (s *Store) GetByKey(ctx context.Context, key string) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE group_key = ?`, key)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// List returns all songs in insertion order.
func (s *Store) List(ctx context.Context) ([]*Song, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+songColumns+` FROM songs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// LoadEntries populates a song's child entries in their recorded order.
func (s *Store) LoadEntries(ctx context.Context, song *Song) error {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM entries WHERE song_id = ? ORDER BY position`,
		song.ID,
	)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	song.Entries = nil
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return err
		}
		song.Entries = append(song.Entries, entry)
	}
	return rows.Err()
}

// ListWithEntries returns all songs with their entries loaded.
func (s *Store) ListWithEntries(ctx context.Context) ([]*Song, error) {
	songs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, song := range songs {
		if err := s.LoadEntries(ctx, song); err != nil {
			return nil, err
		}
	}
	return songs, nil
}

// Dates returns the distinct entry dates, newest first. Entries without a
// date are excluded; callers decide how to label them.
func (s *Store) Dates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT date FROM entries WHERE date IS NOT NULL AND date != '' ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// EntriesByDate returns the entries recorded on one date ordered by sequence.
func (s *Store) EntriesByDate(ctx context.Context, date string) ([]*Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM entries WHERE date = ? ORDER BY sequence, position`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("entries by date: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FilterSongs narrows songs to those whose name, alternate name, singer,
// alternate singer, or song type contains the term, case-folded.
func FilterSongs(songs []*Song, term string) []*Song {
	term = songkey.Fold(strings.TrimSpace(term))
	if term == "" {
		return songs
	}
	matched := make([]*Song, 0, len(songs))
	for _, song := range songs {
		haystack := songkey.Fold(strings.Join([]string{
			song.Name, song.NameAlt, song.Singer, song.SingerAlt, song.SongType,
		}, "\n"))
		if strings.Contains(haystack, term) {
			matched = append(matched, song)
		}
	}
	return matched
}
