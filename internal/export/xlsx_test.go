package export_test

import (
	"path/filepath"
	"testing"

	"setlist/internal/export"
	"setlist/internal/library"
	"setlist/internal/parse"
)

func TestWriteTemplateRoundTripsThroughRowParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song_template.xlsx")
	if err := export.WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate failed: %v", err)
	}

	rows, err := export.ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 sample rows, got %d", len(rows))
	}

	entries := parse.Rows(rows, "2024-02-01")
	if len(entries) != 3 {
		t.Fatalf("expected all sample rows to parse, got %d", len(entries))
	}
	if entries[0].Name != "君色シグナル" || entries[0].SongType != "Opening" {
		t.Fatalf("unexpected first sample entry %+v", entries[0])
	}
	if entries[0].Duration != "01:22:41 ~ 01:27:21" {
		t.Fatalf("unexpected duration %q", entries[0].Duration)
	}
}

func TestWriteXLSXSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs_export.xlsx")
	songs := []*library.Song{
		{Name: "Song A", Singer: "Singer X", FirstDate: "2024-01-15", PlayCount: 2},
		{Name: "曲", Singer: "", FirstDate: "2024-01-01", PlayCount: 3},
	}
	if err := export.WriteXLSX(path, songs); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	rows, err := export.ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Song Name" || rows[0][3] != "Play Count" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "Song A" || rows[1][3] != "2" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
}
