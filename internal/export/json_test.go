package export_test

import (
	"encoding/json"
	"testing"
	"time"

	"setlist/internal/export"
	"setlist/internal/library"
)

func backupFixture(t *testing.T) []byte {
	t.Helper()
	songs := []*library.Song{
		{
			ID:        "song-1",
			Key:       "song a_singer x",
			Name:      "Song A",
			NameAlt:   "SongA",
			Singer:    "Singer X",
			SingerAlt: "SingerX",
			SongType:  "Opening",
			Duration:  "00:06:33 ~ 00:10:19",
			FirstDate: "2024-01-15",
			Dates:     []string{"2024-01-15"},
			PlayCount: 1,
			Entries: []*library.Entry{
				{
					ID:       "entry-1",
					Name:     "Song A",
					Singer:   "Singer X",
					Date:     "2024-01-15",
					Sequence: 1,
					AddedAt:  time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	raw, err := export.JSON(songs)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	return raw
}

func TestJSONDocumentIsKeyedMap(t *testing.T) {
	raw := backupFixture(t)

	var doc map[string]map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("backup is not a JSON object: %v", err)
	}
	record, ok := doc["song a_singer x"]
	if !ok {
		t.Fatalf("expected grouping key at top level, got keys %v", keysOf(doc))
	}
	if record["name"] != "Song A" || record["nameEnglish"] != "SongA" {
		t.Fatalf("unexpected record fields: %v", record)
	}
	if record["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", record["count"])
	}
}

func TestParseJSONRoundTrip(t *testing.T) {
	raw := backupFixture(t)

	songs, err := export.ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(songs) != 1 {
		t.Fatalf("expected 1 song, got %d", len(songs))
	}
	song := songs[0]
	if song.Key != "song a_singer x" || song.Name != "Song A" || song.PlayCount != 1 {
		t.Fatalf("unexpected song %+v", song)
	}
	if len(song.Entries) != 1 || song.Entries[0].Sequence != 1 {
		t.Fatalf("unexpected entries %+v", song.Entries)
	}
}

func TestParseJSONRejectsArrays(t *testing.T) {
	if _, err := export.ParseJSON([]byte(`[{"name":"Song A"}]`)); err == nil {
		t.Fatal("expected top-level arrays to be rejected")
	}
}

func TestParseJSONCountFollowsEntries(t *testing.T) {
	raw := []byte(`{"song a_":{"name":"Song A","count":5,"entries":[
		{"name":"Song A","date":"2024-01-01","sequence":1},
		{"name":"Song A","date":"2024-01-02","sequence":1}
	]}}`)

	songs, err := export.ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(songs) != 1 || songs[0].PlayCount != 2 {
		t.Fatalf("expected play count reconciled to 2 entries, got %+v", songs)
	}
	if songs[0].PlayCount != len(songs[0].Entries) {
		t.Fatalf("play count %d does not match %d entries", songs[0].PlayCount, len(songs[0].Entries))
	}
}

func TestParseJSONRejectsRecordsWithoutEntries(t *testing.T) {
	raw := []byte(`{"song a_":{"name":"Song A","count":3,"entries":[]}}`)
	if _, err := export.ParseJSON(raw); err == nil {
		t.Fatal("expected records without plays to be rejected")
	}
}

func TestParseJSONRejectsNamelessRecords(t *testing.T) {
	if _, err := export.ParseJSON([]byte(`{"x_":{"count":1,"entries":[]}}`)); err == nil {
		t.Fatal("expected records without a name to be rejected")
	}
}

func keysOf(doc map[string]map[string]any) []string {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	return keys
}
