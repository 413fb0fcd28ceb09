package library

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// AddSongType registers a custom song type. Adding an existing type is a
// no-op.
func (s *Store) AddSongType(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("song type name is required")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO song_types (name, position)
         VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM song_types))
         ON CONFLICT(name) DO NOTHING`,
		name,
	)
	if err != nil {
		return fmt.Errorf("add song type: %w", err)
	}
	return nil
}

// RemoveSongType deletes a custom song type. Songs already tagged with it
// keep their tag.
func (s *Store) RemoveSongType(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM song_types WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("remove song type: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove song type: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("song type %q: %w", name, ErrNotFound)
	}
	return nil
}

// SongTypes returns the custom types in registration order followed by types
// observed on songs but never registered, sorted.
func (s *Store) SongTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM song_types ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list song types: %w", err)
	}
	defer rows.Close()

	var types []string
	seen := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		types = append(types, name)
		seen[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	observedRows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT song_type FROM songs WHERE song_type IS NOT NULL AND song_type != ''`,
	)
	if err != nil {
		return nil, fmt.Errorf("observed song types: %w", err)
	}
	defer observedRows.Close()

	var observed []string
	for observedRows.Next() {
		var name string
		if err := observedRows.Scan(&name); err != nil {
			return nil, err
		}
		if !seen[name] {
			observed = append(observed, name)
		}
	}
	if err := observedRows.Err(); err != nil {
		return nil, err
	}

	sort.Strings(observed)
	return append(types, observed...), nil
}
