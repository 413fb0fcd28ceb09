package parse_test

import (
	"testing"

	"setlist/internal/library"
	"setlist/internal/parse"
)

func TestTimestampedGrammarVariants(t *testing.T) {
	text := "00:06:33 ~ 00:10:19 01| Song A(SongA) | Singer X(SingerX) |2024-01-15|Opening\n" +
		"00:06:33 ~ 00:10:19 | Song A | Singer X"

	entries := parse.Timestamped(text, "2024-02-01")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Name != "Song A" || first.NameAlt != "SongA" {
		t.Fatalf("unexpected name fields: %+v", first)
	}
	if first.Singer != "Singer X" || first.SingerAlt != "SingerX" {
		t.Fatalf("unexpected singer fields: %+v", first)
	}
	if first.Date != "2024-01-15" {
		t.Fatalf("expected inline date kept, got %q", first.Date)
	}
	if first.SongType != "Opening" {
		t.Fatalf("expected song type parsed, got %q", first.SongType)
	}
	if first.Duration != "00:06:33 ~ 00:10:19" {
		t.Fatalf("unexpected duration %q", first.Duration)
	}
	if first.StartTime != "00:06:33" || first.EndTime != "00:10:19" {
		t.Fatalf("unexpected times: %+v", first)
	}
	if first.Sequence != 0 {
		t.Fatalf("expected parser to leave sequence unassigned, got %d", first.Sequence)
	}

	second := entries[1]
	if second.Name != "Song A" || second.NameAlt != "" || second.Singer != "Singer X" {
		t.Fatalf("unexpected fields on plain variant: %+v", second)
	}
	if second.Date != "2024-02-01" {
		t.Fatalf("expected fallback date, got %q", second.Date)
	}
}

func TestTimestampedSkipsUnparseableLines(t *testing.T) {
	text := "random chatter\n" +
		"\n" +
		"00:01:00 ~ 00:02:00 | Song B | Singer Y\n" +
		"also not a song line"

	entries := parse.Timestamped(text, "2024-02-01")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Song B" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestSimpleSkipsHeaderAndSplitsDelimiters(t *testing.T) {
	text := "Song Name, Singer, Date\n" +
		"Song A, Singer X, 2024-01-15\n" +
		"Song B; Singer Y\n" +
		"Song C| Singer Z |2024-01-16\n" +
		"\n" +
		", No Name"

	entries := parse.Simple(text, "2024-02-01")
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	cases := []struct {
		name   string
		singer string
		date   string
	}{
		{"Song A", "Singer X", "2024-01-15"},
		{"Song B", "Singer Y", "2024-02-01"},
		{"Song C", "Singer Z", "2024-01-16"},
	}
	for i, want := range cases {
		got := entries[i]
		if got.Name != want.name || got.Singer != want.singer || got.Date != want.date {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestRowsMapsTemplateColumns(t *testing.T) {
	rows := [][]string{
		{"Song Name (Japanese) *", "Song Name (English)", "Singer (Japanese)", "Singer (English)", "Song Type", "Start Time", "End Time", "Date"},
		{"君色シグナル", "Kimiiro Signal", "春奈るな", "Haruna Runna", "Opening", "01:22:41", "01:27:21", "2024-01-15"},
		{"", "skipped row", "someone", "", "", "", "", ""},
		{"Short Row"},
	}

	entries := parse.Rows(rows, "2024-02-01")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	want := library.RawEntry{
		Name:      "君色シグナル",
		NameAlt:   "Kimiiro Signal",
		Singer:    "春奈るな",
		SingerAlt: "Haruna Runna",
		SongType:  "Opening",
		Duration:  "01:22:41 ~ 01:27:21",
		StartTime: "01:22:41",
		EndTime:   "01:27:21",
		Date:      "2024-01-15",
	}
	if first != want {
		t.Fatalf("expected %+v, got %+v", want, first)
	}

	second := entries[1]
	if second.Name != "Short Row" || second.Date != "2024-02-01" || second.Duration != "" {
		t.Fatalf("unexpected short row handling: %+v", second)
	}
}
