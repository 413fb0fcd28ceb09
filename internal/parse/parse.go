// Package parse turns pasted text and spreadsheet rows into raw play entries.
//
// Two text grammars are supported. The timestamped grammar covers stream log
// lines like
//
//	21:04:10 ~ 21:08:30 3 | Song Name(Alt Name) | Singer(Alt Singer) |2024-01-15 | Ballad
//
// where the ordinal after the time range and every field past the singer are
// optional. The simple grammar covers delimited lines of name, singer and
// date. Both fall back to a caller-supplied date for lines that carry none.
package parse

import (
	"regexp"
	"strings"

	"setlist/internal/library"
)

var (
	timestampedOrdinal = regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2})\s*~\s*(\d{2}:\d{2}:\d{2})\s*\d+\s*\|\s*(.+?)\s*(?:\(([^)]+)\))?\s*\|\s*(.+?)\s*(?:\(([^)]+)\))?\s*(?:\|\s*(\d{4}-\d{2}-\d{2}))?\s*(?:\|\s*(.*?))?\s*$`)
	timestampedPlain = regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2})\s*~\s*(\d{2}:\d{2}:\d{2})\s*\|\s*(.+?)\s*(?:\(([^)]+)\))?\s*\|\s*(.+?)\s*(?:\(([^)]+)\))?\s*(?:\|\s*(\d{4}-\d{2}-\d{2}))?\s*(?:\|\s*(.*?))?\s*$`)

	simpleSeparator = regexp.MustCompile(`[,;|]+`)
)

// Timestamped parses stream log text, one play per line. Lines that match
// neither grammar variant are skipped. Plays carry no sequence; the store
// assigns one at merge time.
func Timestamped(text, importDate string) []library.RawEntry {
	var entries []library.RawEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := timestampedOrdinal.FindStringSubmatch(line)
		if match == nil {
			match = timestampedPlain.FindStringSubmatch(line)
		}
		if match == nil {
			continue
		}

		start, end := match[1], match[2]
		entry := library.RawEntry{
			Name:      strings.TrimSpace(match[3]),
			NameAlt:   strings.TrimSpace(match[4]),
			Singer:    strings.TrimSpace(match[5]),
			SingerAlt: strings.TrimSpace(match[6]),
			SongType:  strings.TrimSpace(match[8]),
			Duration:  start + " ~ " + end,
			StartTime: start,
			EndTime:   end,
			Date:      strings.TrimSpace(match[7]),
		}
		if entry.Name == "" {
			continue
		}
		if entry.Date == "" {
			entry.Date = importDate
		}
		entries = append(entries, entry)
	}
	return entries
}

// Simple parses delimited text of name, singer and date. The first line is
// assumed to be a header and skipped. Any run of commas, semicolons or pipes
// separates fields.
func Simple(text, importDate string) []library.RawEntry {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var entries []library.RawEntry
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := simpleSeparator.Split(line, -1)
		entry := library.RawEntry{Name: strings.TrimSpace(fields[0])}
		if len(fields) > 1 {
			entry.Singer = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			entry.Date = strings.TrimSpace(fields[2])
		}
		if entry.Name == "" {
			continue
		}
		if entry.Date == "" {
			entry.Date = importDate
		}
		entries = append(entries, entry)
	}
	return entries
}

// Rows maps tabular rows in template column order: name, alternate name,
// singer, alternate singer, song type, start time, end time, date. The first
// row is the header and skipped; rows without a name are dropped.
func Rows(rows [][]string, importDate string) []library.RawEntry {
	if len(rows) > 0 {
		rows = rows[1:]
	}

	var entries []library.RawEntry
	for _, row := range rows {
		entry := library.RawEntry{
			Name:      cell(row, 0),
			NameAlt:   cell(row, 1),
			Singer:    cell(row, 2),
			SingerAlt: cell(row, 3),
			SongType:  cell(row, 4),
			StartTime: cell(row, 5),
			EndTime:   cell(row, 6),
			Date:      cell(row, 7),
		}
		if entry.Name == "" {
			continue
		}
		if entry.StartTime != "" && entry.EndTime != "" {
			entry.Duration = entry.StartTime + " ~ " + entry.EndTime
		}
		if entry.Date == "" {
			entry.Date = importDate
		}
		entries = append(entries, entry)
	}
	return entries
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
