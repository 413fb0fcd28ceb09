package library

import (
	"strings"
	"time"
)

// UnknownSinger is the display bucket for records without a singer. The empty
// singer still participates in grouping keys as an empty string.
const UnknownSinger = "Unknown"

// RawEntry is one parsed play before aggregation. Parsers guarantee Name is
// non-empty; all other fields may be blank. Sequence 0 means "unassigned" and
// the store allocates one at merge time; a positive value is used as-is.
type RawEntry struct {
	Name      string
	NameAlt   string
	Singer    string
	SingerAlt string
	SongType  string
	Duration  string
	StartTime string
	EndTime   string
	Date      string
	Sequence  int
}

// Entry is one recorded play, always owned by exactly one Song. Fields are a
// snapshot taken at creation time; a group rename rewrites them, a group merge
// does not.
type Entry struct {
	ID        string
	SongID    string
	Name      string
	NameAlt   string
	Singer    string
	SingerAlt string
	SongType  string
	Duration  string
	StartTime string
	EndTime   string
	Date      string
	Sequence  int
	AddedAt   time.Time
}

// Song is the aggregate record for one grouping key. Representative fields
// come from the first entry that supplied them and are backfill-only: once
// set they are never overwritten by later merges (only by an explicit edit).
type Song struct {
	ID        string
	Key       string
	Name      string
	NameAlt   string
	Singer    string
	SingerAlt string
	SongType  string
	Duration  string
	FirstDate string
	Dates     []string
	PlayCount int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Entries is populated by calls that load children; nil otherwise.
	Entries []*Entry
}

// SongFields carries the editable representative fields for Rename.
type SongFields struct {
	Name      string
	NameAlt   string
	Singer    string
	SingerAlt string
	SongType  string
	Duration  string
}

// DisplaySinger coalesces an empty singer to the Unknown bucket.
func DisplaySinger(singer string) string {
	if strings.TrimSpace(singer) == "" {
		return UnknownSinger
	}
	return singer
}

// HasDate reports whether the song already carries the given distinct date.
func (s *Song) HasDate(date string) bool {
	for _, d := range s.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// Summary aggregates library counts for the dashboard view.
type Summary struct {
	UniqueSongs   int
	TotalEntries  int
	UniqueSingers int
	MostPlayed    int
}

// SingerCount is a singer's total play count across all their songs.
type SingerCount struct {
	Singer    string
	PlayCount int
}
