package library_test

import (
	"context"
	"testing"

	"setlist/internal/library"
	"setlist/internal/testsupport"
)

func seedStatsLibrary(t *testing.T, store *library.Store) {
	t.Helper()
	raws := []library.RawEntry{
		{Name: "Song A", Singer: "Singer X", Date: "2024-01-01"},
		{Name: "Song A", Singer: "Singer X", Date: "2024-01-02"},
		{Name: "Song A", Singer: "Singer X", Date: "2024-01-03"},
		{Name: "Song B", Singer: "Singer Y", Date: "2024-01-01"},
		{Name: "Song B", Singer: "Singer Y", Date: "2024-01-02"},
		{Name: "Song C", Singer: "", Date: "2024-01-03"},
	}
	if _, err := store.MergeAll(context.Background(), raws); err != nil {
		t.Fatalf("MergeAll failed: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	seedStatsLibrary(t, store)

	summary, err := store.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.UniqueSongs != 3 {
		t.Fatalf("expected 3 unique songs, got %d", summary.UniqueSongs)
	}
	if summary.TotalEntries != 6 {
		t.Fatalf("expected 6 total plays, got %d", summary.TotalEntries)
	}
	if summary.UniqueSingers != 3 {
		t.Fatalf("expected 3 singers (including Unknown), got %d", summary.UniqueSingers)
	}
	if summary.MostPlayed != 3 {
		t.Fatalf("expected most played 3, got %d", summary.MostPlayed)
	}
}

func TestTopSongsOrdersByPlayCount(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	seedStatsLibrary(t, store)

	top, err := store.TopSongs(context.Background(), 2)
	if err != nil {
		t.Fatalf("TopSongs failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(top))
	}
	if top[0].Name != "Song A" || top[1].Name != "Song B" {
		t.Fatalf("unexpected order: %q, %q", top[0].Name, top[1].Name)
	}
}

func TestTopSingersBucketsUnknown(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	seedStatsLibrary(t, store)

	singers, err := store.TopSingers(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopSingers failed: %v", err)
	}
	if len(singers) != 3 {
		t.Fatalf("expected 3 singers, got %d", len(singers))
	}
	if singers[0].Singer != "Singer X" || singers[0].PlayCount != 3 {
		t.Fatalf("unexpected top singer %+v", singers[0])
	}
	found := false
	for _, singer := range singers {
		if singer.Singer == library.UnknownSinger && singer.PlayCount == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected empty singer bucketed as %q, got %+v", library.UnknownSinger, singers)
	}
}

func TestSongTypesUnionCustomAndObserved(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.MergeEntry(t, store, library.RawEntry{Name: "Song A", SongType: "Opening", Date: "2024-01-01"})
	testsupport.MergeEntry(t, store, library.RawEntry{Name: "Song B", SongType: "Ending", Date: "2024-01-01"})
	if err := store.AddSongType(ctx, "Cover"); err != nil {
		t.Fatalf("AddSongType failed: %v", err)
	}
	if err := store.AddSongType(ctx, "Opening"); err != nil {
		t.Fatalf("AddSongType failed: %v", err)
	}

	types, err := store.SongTypes(ctx)
	if err != nil {
		t.Fatalf("SongTypes failed: %v", err)
	}
	// Custom types in registration order, then observed ones sorted.
	want := []string{"Cover", "Opening", "Ending"}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, types)
		}
	}
}

func TestReplaceAllSwapsLibrary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.MergeEntry(t, store, library.RawEntry{Name: "Old Song", Date: "2024-01-01"})

	replacement := []*library.Song{
		{
			Key:       "new song_singer z",
			Name:      "New Song",
			Singer:    "Singer Z",
			FirstDate: "2024-06-01",
			Dates:     []string{"2024-06-01"},
			PlayCount: 1,
			Entries: []*library.Entry{
				{Name: "New Song", Singer: "Singer Z", Date: "2024-06-01", Sequence: 5},
			},
		},
	}
	if err := store.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	songs, err := store.ListWithEntries(ctx)
	if err != nil {
		t.Fatalf("ListWithEntries failed: %v", err)
	}
	if len(songs) != 1 || songs[0].Name != "New Song" {
		t.Fatalf("expected replaced library, got %+v", songs)
	}
	if len(songs[0].Entries) != 1 || songs[0].Entries[0].Sequence != 5 {
		t.Fatalf("expected imported entry kept, got %+v", songs[0].Entries)
	}

	// Counters continue past the highest imported sequence.
	next, err := store.NextSequence(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("NextSequence failed: %v", err)
	}
	if next != 6 {
		t.Fatalf("expected next sequence 6, got %d", next)
	}
}
