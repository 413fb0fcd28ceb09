package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"setlist/internal/config"
)

// Store manages library persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the library database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

const songColumns = "id, group_key, name, name_alt, singer, singer_alt, song_type, duration, first_date, dates_json, play_count, created_at, updated_at"

const entryColumns = "id, song_id, name, name_alt, singer, singer_alt, song_type, duration, start_time, end_time, date, sequence, added_at"

func scanSong(scanner interface{ Scan(dest ...any) error }) (*Song, error) {
	var (
		id         string
		groupKey   string
		name       string
		nameAlt    sql.NullString
		singer     string
		singerAlt  sql.NullString
		songType   sql.NullString
		duration   sql.NullString
		firstDate  sql.NullString
		datesJSON  string
		playCount  int
		createdRaw string
		updatedRaw string
	)

	if err := scanner.Scan(
		&id,
		&groupKey,
		&name,
		&nameAlt,
		&singer,
		&singerAlt,
		&songType,
		&duration,
		&firstDate,
		&datesJSON,
		&playCount,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	song := &Song{
		ID:        id,
		Key:       groupKey,
		Name:      name,
		NameAlt:   nameAlt.String,
		Singer:    singer,
		SingerAlt: singerAlt.String,
		SongType:  songType.String,
		Duration:  duration.String,
		FirstDate: firstDate.String,
		PlayCount: playCount,
	}
	if err := json.Unmarshal([]byte(datesJSON), &song.Dates); err != nil {
		return nil, fmt.Errorf("decode dates for %q: %w", groupKey, err)
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		song.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		song.UpdatedAt = updated
	}
	return song, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id        string
		songID    string
		name      string
		nameAlt   sql.NullString
		singer    string
		singerAlt sql.NullString
		songType  sql.NullString
		duration  sql.NullString
		startTime sql.NullString
		endTime   sql.NullString
		date      sql.NullString
		sequence  int
		addedRaw  string
	)

	if err := scanner.Scan(
		&id,
		&songID,
		&name,
		&nameAlt,
		&singer,
		&singerAlt,
		&songType,
		&duration,
		&startTime,
		&endTime,
		&date,
		&sequence,
		&addedRaw,
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:        id,
		SongID:    songID,
		Name:      name,
		NameAlt:   nameAlt.String,
		Singer:    singer,
		SingerAlt: singerAlt.String,
		SongType:  songType.String,
		Duration:  duration.String,
		StartTime: startTime.String,
		EndTime:   endTime.String,
		Date:      date.String,
		Sequence:  sequence,
	}
	if added, err := parseTimeString(addedRaw); err == nil {
		entry.AddedAt = added
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func encodeDates(dates []string) (string, error) {
	if dates == nil {
		dates = []string{}
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return "", fmt.Errorf("encode dates: %w", err)
	}
	return string(raw), nil
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
