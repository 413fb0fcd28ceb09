package library

import (
	"context"
	"fmt"
	"sort"
)

// Summarize computes the headline library counts. Singers are counted after
// coalescing the empty singer into the Unknown bucket.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var summary Summary

	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1), COALESCE(SUM(play_count), 0), COALESCE(MAX(play_count), 0) FROM songs`,
	)
	if err := row.Scan(&summary.UniqueSongs, &summary.TotalEntries, &summary.MostPlayed); err != nil {
		return Summary{}, fmt.Errorf("summarize songs: %w", err)
	}

	singers, err := s.TopSingers(ctx, 0)
	if err != nil {
		return Summary{}, err
	}
	summary.UniqueSingers = len(singers)
	return summary, nil
}

// TopSongs returns songs by descending play count. Ties keep insertion order.
// A limit of 0 returns all songs.
func (s *Store) TopSongs(ctx context.Context, limit int) ([]*Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY play_count DESC, rowid ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top songs: %w", err)
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

// TopSingers aggregates play counts per singer, descending. Ties keep the
// order singers first appeared in the library. A limit of 0 returns all.
func (s *Store) TopSingers(ctx context.Context, limit int) ([]SingerCount, error) {
	songs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	var order []string
	for _, song := range songs {
		singer := DisplaySinger(song.Singer)
		if _, ok := totals[singer]; !ok {
			order = append(order, singer)
		}
		totals[singer] += song.PlayCount
	}

	counts := make([]SingerCount, 0, len(order))
	for _, singer := range order {
		counts = append(counts, SingerCount{Singer: singer, PlayCount: totals[singer]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].PlayCount > counts[j].PlayCount
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

// RecentEntries returns the most recently recorded plays, newest first.
func (s *Store) RecentEntries(ctx context.Context, limit int) ([]*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY added_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
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
