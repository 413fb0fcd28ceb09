package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"setlist/internal/library"
)

// Record is a song as it appears in the JSON backup document, keyed by
// grouping key at the top level.
type Record struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameEnglish   string        `json:"nameEnglish"`
	Singer        string        `json:"singer"`
	SingerEnglish string        `json:"singerEnglish"`
	SongType      string        `json:"songType"`
	Duration      string        `json:"duration"`
	Date          string        `json:"date"`
	Dates         []string      `json:"dates"`
	Count         int           `json:"count"`
	Entries       []RecordEntry `json:"entries"`
}

// RecordEntry is one play inside a Record.
type RecordEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameEnglish   string `json:"nameEnglish"`
	Singer        string `json:"singer"`
	SingerEnglish string `json:"singerEnglish"`
	SongType      string `json:"songType"`
	Duration      string `json:"duration"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Date          string `json:"date"`
	Sequence      int    `json:"sequence"`
	AddedDate     string `json:"addedDate"`
}

// Document is the whole library keyed by grouping key.
type Document map[string]Record

// JSON renders the library as an indented backup document. Keys are emitted
// in sorted order.
func JSON(songs []*library.Song) ([]byte, error) {
	doc := Document{}
	for _, song := range songs {
		doc[song.Key] = recordFromSong(song)
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode library: %w", err)
	}
	return append(raw, '\n'), nil
}

// ParseJSON decodes a backup document and converts it back to songs, in
// sorted key order. A top-level array is rejected: backups are keyed maps.
func ParseJSON(raw []byte) ([]*library.Song, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("backup document is empty")
	}
	if trimmed[0] == '[' {
		return nil, fmt.Errorf("backup document must be an object keyed by song, not an array")
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode backup document: %w", err)
	}

	songs := make([]*library.Song, 0, len(doc))
	for _, key := range sortedKeys(doc) {
		song, err := songFromRecord(key, doc[key])
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func recordFromSong(song *library.Song) Record {
	record := Record{
		ID:            song.ID,
		Name:          song.Name,
		NameEnglish:   song.NameAlt,
		Singer:        song.Singer,
		SingerEnglish: song.SingerAlt,
		SongType:      song.SongType,
		Duration:      song.Duration,
		Date:          song.FirstDate,
		Dates:         song.Dates,
		Count:         song.PlayCount,
		Entries:       make([]RecordEntry, 0, len(song.Entries)),
	}
	if record.Dates == nil {
		record.Dates = []string{}
	}
	for _, entry := range song.Entries {
		record.Entries = append(record.Entries, RecordEntry{
			ID:            entry.ID,
			Name:          entry.Name,
			NameEnglish:   entry.NameAlt,
			Singer:        entry.Singer,
			SingerEnglish: entry.SingerAlt,
			SongType:      entry.SongType,
			Duration:      entry.Duration,
			StartTime:     entry.StartTime,
			EndTime:       entry.EndTime,
			Date:          entry.Date,
			Sequence:      entry.Sequence,
			AddedDate:     entry.AddedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return record
}

func songFromRecord(key string, record Record) (*library.Song, error) {
	if record.Name == "" {
		return nil, fmt.Errorf("record %q has no song name", key)
	}
	// The entry list is authoritative for the play count; a stale count
	// field would leave the restored store with a count that no longer
	// matches its plays.
	count := len(record.Entries)
	if count == 0 {
		return nil, fmt.Errorf("record %q has no plays", key)
	}

	song := &library.Song{
		ID:        record.ID,
		Key:       key,
		Name:      record.Name,
		NameAlt:   record.NameEnglish,
		Singer:    record.Singer,
		SingerAlt: record.SingerEnglish,
		SongType:  record.SongType,
		Duration:  record.Duration,
		FirstDate: record.Date,
		Dates:     record.Dates,
		PlayCount: count,
	}
	for _, entry := range record.Entries {
		e := &library.Entry{
			ID:        entry.ID,
			Name:      entry.Name,
			NameAlt:   entry.NameEnglish,
			Singer:    entry.Singer,
			SingerAlt: entry.SingerEnglish,
			SongType:  entry.SongType,
			Duration:  entry.Duration,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Date:      entry.Date,
			Sequence:  entry.Sequence,
		}
		if e.Name == "" {
			e.Name = record.Name
		}
		if added, err := time.Parse(time.RFC3339Nano, entry.AddedDate); err == nil {
			e.AddedAt = added
		}
		song.Entries = append(song.Entries, e)
	}
	return song, nil
}

func sortedKeys(doc Document) []string {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
